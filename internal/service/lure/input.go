package lure

import (
	"strconv"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

// ListInput holds the raw query parameters of a lure listing.
type ListInput struct {
	Brand  string
	Name   string
	Color  string
	Size   string
	UserID string
}

// Filter builds the filter descriptor for the listing. Scoping by user also
// includes the shared standard lures.
func (in *ListInput) Filter() domain.Filter {
	var f domain.Filter
	f.ILike("brand", in.Brand)
	f.ILike("name", in.Name)
	f.ILike("color", in.Color)
	f.Equals("size", strings.TrimSpace(in.Size))

	if raw := strings.TrimSpace(in.UserID); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.Predicates = append(f.Predicates, domain.Predicate{
				Kind:   domain.PredicateInSet,
				Column: "user_id",
				Value:  []int64{id, domain.StandardLureOwnerID},
			})
		}
	}
	return f
}

// CreateInput holds the parameters for creating a lure.
type CreateInput struct {
	Brand string
	Name  string
	Color string
	Size  string
}

// Validate checks the create input.
func (in *CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Brand) == "" {
		errs = append(errs, domain.FieldError{Field: "brand", Message: "is required"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the partial fields of a lure patch.
type UpdateInput struct {
	Brand *string
	Name  *string
	Color *string
	Size  *string
}
