package users

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// User is the public identity, it never carries the password.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is a stored user record.
type Credentials struct {
	User
	PasswordHash string `json:"-"`
}

func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
