package catch

import (
	"strings"
	"time"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

// DefaultSort orders catch listings newest first. It doubles as the
// fallback when an orderBy parameter names an unknown field or direction.
var DefaultSort = domain.Sort{Column: "c.caught_at", Desc: true}

// sortFields maps orderBy field names to their qualified sort columns.
var sortFields = map[string]string{
	"date":      "c.date",
	"length":    "c.length",
	"weight":    "c.weight",
	"caught_at": "c.caught_at",
}

// ListInput holds the raw query parameters of a catch listing.
type ListInput struct {
	UserID       string
	SpeciesID    string
	LakeID       string
	MasterAngler string
	MinLength    string
	MinWeight    string
	LureIDs      string
	OrderBy      string
}

// Filter builds the filter descriptor for the listing. Columns are qualified
// with the catch table alias because the repository joins reference tables.
func (in *ListInput) Filter() domain.Filter {
	var f domain.Filter
	f.IDList("c.user_id", in.UserID)
	f.IDList("c.species_id", in.SpeciesID)
	f.IDList("c.lake_id", in.LakeID)

	switch strings.ToLower(strings.TrimSpace(in.MasterAngler)) {
	case "y", "true":
		f.Equals("c.master_angler", true)
	}

	f.Gte("c.length", in.MinLength)
	f.Gte("c.weight", in.MinWeight)
	f.IDList("c.lure_id", in.LureIDs)

	f.Sort = domain.ParseSort(in.OrderBy, sortFields, DefaultSort)
	return f
}

// CreateInput holds the parameters for logging a catch.
type CreateInput struct {
	LakeID            int64
	SpeciesID         int64
	LureID            *int64
	Length            *float64
	Weight            *float64
	Date              *time.Time
	Time              *string
	Barometric        *float64
	Temperature       *int
	WeatherConditions *string
	WindDirection     *string
	WindSpeed         *int
	FishImage         string
	Witness           string
}

// Validate checks the create input.
func (in *CreateInput) Validate() error {
	var errs []domain.FieldError
	if in.LakeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "lake_id", Message: "is required"})
	}
	if in.SpeciesID <= 0 {
		errs = append(errs, domain.FieldError{Field: "species_id", Message: "is required"})
	}
	if in.Length != nil && *in.Length <= 0 {
		errs = append(errs, domain.FieldError{Field: "length", Message: "must be positive"})
	}
	if in.Weight != nil && *in.Weight <= 0 {
		errs = append(errs, domain.FieldError{Field: "weight", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the partial fields of a catch patch.
type UpdateInput struct {
	LakeID            *int64
	SpeciesID         *int64
	LureID            *int64
	Length            *float64
	Weight            *float64
	Date              *time.Time
	Time              *string
	Barometric        *float64
	Temperature       *int
	WeatherConditions *string
	WindDirection     *string
	WindSpeed         *int
	FishImage         *string
	Witness           *string
}
