package user

import (
	"net/mail"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

// ListInput holds the raw query parameters of a user listing.
type ListInput struct {
	ID        string
	IsAdmin   string
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// Filter builds the filter descriptor for the listing.
// Unparseable values produce no predicate.
func (in *ListInput) Filter() domain.Filter {
	var f domain.Filter
	f.IDList("id", in.ID)
	switch strings.ToLower(strings.TrimSpace(in.IsAdmin)) {
	case "true", "y":
		f.Equals("is_admin", true)
	case "false", "n":
		f.Equals("is_admin", false)
	}
	f.ILike("username", in.Username)
	f.ILike("email", in.Email)
	f.ILike("first_name", in.FirstName)
	f.ILike("last_name", in.LastName)
	return f
}

// UpdateInput holds the partial fields of a profile patch.
type UpdateInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

// Validate checks the provided fields.
func (in *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if len(username) < 3 || len(username) > 50 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-50 characters"})
		}
	}
	if in.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*in.Email)); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "is not a valid address"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Empty reports whether the patch changes nothing.
func (in *UpdateInput) Empty() bool {
	return in.Username == nil && in.Email == nil && in.FirstName == nil && in.LastName == nil
}
