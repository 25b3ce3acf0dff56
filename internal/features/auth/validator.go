package auth

import (
	"errors"

	"github.com/mubashirjatoi/todo-api/internal/pkg/validator"
)

// ValidateRegister checks an account creation payload
func ValidateRegister(req *RegisterRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("A valid email is required")
	}
	if !validator.IsValidPassword(req.Password) {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

// ValidateLogin checks a login payload
func ValidateLogin(req *LoginRequest) error {
	if req.Email == "" || req.Password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}
