package boosthub

import (
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"golang.org/x/crypto/bcrypt"
)

func validateLogin(login string) error {
	if login == "" {
		return ErrLoginNotValid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordNotValid
	}
	return nil
}

// validateRole limits self-registration to the two public roles, admins are
// provisioned out of band.
func validateRole(role model.Role) error {
	if role != model.RoleCustomer && role != model.RoleBooster {
		return ErrRoleNotValid
	}
	return nil
}

func HashPassword(password string) (string, error) {
	cost := 14
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
