package auth

import (
	"regexp"
	"strings"
)

const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors maps a form field to its problem, empty means the form is valid.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid form:")
	for _, field := range []string{"name", "email", "password", "confirmPassword"} {
		if msg, ok := fe[field]; ok {
			sb.WriteString(" " + field + ": " + msg + ";")
		}
	}
	return sb.String()
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	validateEmail(errs, f.Email)
	validatePassword(errs, f.Password)
	return errs
}

func (f RegisterForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	validateEmail(errs, f.Email)
	validatePassword(errs, f.Password)
	switch {
	case f.ConfirmPassword == "":
		errs["confirmPassword"] = "password confirmation is required"
	case f.ConfirmPassword != f.Password:
		errs["confirmPassword"] = "passwords do not match"
	}
	return errs
}

func validateEmail(errs FieldErrors, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "email is required"
	case !ValidEmail(email):
		errs["email"] = "email is invalid"
	}
}

func validatePassword(errs FieldErrors, password string) {
	switch {
	case password == "":
		errs["password"] = "password is required"
	case len(password) < MinPasswordLength:
		errs["password"] = "password must have at least 6 characters"
	}
}
