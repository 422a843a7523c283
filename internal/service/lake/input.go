package lake

import (
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

// ListInput holds the raw query parameters of a lake listing.
type ListInput struct {
	Name        string
	State       string
	County      string
	NearestTown string
}

// Filter builds the filter descriptor for the listing. All lake filters are
// exact matches; an empty listing is allowed.
func (in *ListInput) Filter() domain.Filter {
	var f domain.Filter
	f.Equals("name", strings.TrimSpace(in.Name))
	f.Equals("state", strings.TrimSpace(in.State))
	f.Equals("county", strings.TrimSpace(in.County))
	f.Equals("nearest_town", strings.TrimSpace(in.NearestTown))
	return f
}

// CreateInput holds the parameters for creating a lake.
type CreateInput struct {
	Name        string
	State       string
	County      string
	NearestTown string
}

// Validate checks the create input.
func (in *CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if strings.TrimSpace(in.State) == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "is required"})
	}
	if strings.TrimSpace(in.NearestTown) == "" {
		errs = append(errs, domain.FieldError{Field: "nearest_town", Message: "is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the partial fields of a lake patch.
type UpdateInput struct {
	Name        *string
	State       *string
	County      *string
	NearestTown *string
	Latitude    *float64
	Longitude   *float64
}
