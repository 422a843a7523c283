package auth

import (
	"net/mail"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

// SignupInput holds the parameters for registering a new user.
type SignupInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Validate checks the signup input.
func (in *SignupInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "is required"})
	case len(username) < 3:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be at least 3 characters"})
	case len(username) > 50:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be at most 50 characters"})
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "is not a valid address"})
	}

	if len(in.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the credentials for a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks the login input.
func (in *LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "is required"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
