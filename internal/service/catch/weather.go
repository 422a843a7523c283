package catch

import (
	"context"
	"fmt"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
)

// WeatherInput holds the coordinates and timestamp of a weather lookup.
type WeatherInput struct {
	Latitude  *float64
	Longitude *float64
	Timestamp *int64
}

// Validate checks that all three lookup parameters were provided.
func (in *WeatherInput) Validate() error {
	var errs []domain.FieldError
	if in.Latitude == nil {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "is required"})
	}
	if in.Longitude == nil {
		errs = append(errs, domain.FieldError{Field: "long", Message: "is required"})
	}
	if in.Timestamp == nil {
		errs = append(errs, domain.FieldError{Field: "dt", Message: "is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Weather proxies a historical weather lookup for the given coordinates and
// unix timestamp. Single-shot; an upstream failure is reported as-is.
func (s *Service) Weather(ctx context.Context, input WeatherInput) (*provider.WeatherObservation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	obs, err := s.weather.Observation(ctx, *input.Latitude, *input.Longitude, *input.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("weather lookup: %w", err)
	}
	return obs, nil
}
