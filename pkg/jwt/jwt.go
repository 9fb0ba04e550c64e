// Package jwt is a small HS256 wrapper around golang-jwt for the cookie
// session tokens.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var tokenLifetime = time.Hour * 24

type JWT struct {
	secret []byte
}

func New(secret []byte) *JWT {
	return &JWT{secret: secret}
}

// Create signs a token carrying the given string claims plus expiration.
func (j *JWT) Create(values map[string]string) (string, error) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(tokenLifetime).Unix(),
	}
	for key, value := range values {
		claims[key] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed sign token: %w", err)
	}

	return signed, nil
}

// Verify parses the token and returns the string value of the claim `key`.
// The second result is false when the token is invalid or the claim is
// missing.
func (j *JWT) Verify(tokenString, key string) (string, bool, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", false, nil
	}

	value, ok := claims[key].(string)
	return value, ok, nil
}
