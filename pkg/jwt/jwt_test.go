package jwt_test

import (
	"testing"

	"github.com/playmixer/boosthub/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func TestCreateVerify(t *testing.T) {
	j := jwt.New([]byte("secret"))

	token, err := j.Create(map[string]string{"UserID": "7", "Role": "BOOSTER"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, ok, err := j.Verify(token, "UserID")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", userID)

	role, ok, err := j.Verify(token, "Role")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "BOOSTER", role)

	_, ok, err = j.Verify(token, "Missing")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := jwt.New([]byte("secret")).Create(map[string]string{"UserID": "7"})
	assert.NoError(t, err)

	_, ok, err := jwt.New([]byte("other")).Verify(token, "UserID")
	assert.Error(t, err)
	assert.False(t, ok)
}
