package lake

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// List returns lakes matching the filters. Public.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Lake, error) {
	lakes, err := s.lakes.List(ctx, input.Filter())
	if err != nil {
		return nil, fmt.Errorf("list lakes: %w", err)
	}
	return lakes, nil
}

// Get returns a lake by id. Public.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Lake, error) {
	return s.lakes.GetByID(ctx, id)
}

// Create geocodes the nearest town and stores the lake. Admin only.
// A failed or empty geocode aborts creation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Lake, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	town := strings.TrimSpace(input.NearestTown)
	state := strings.TrimSpace(input.State)

	point, err := s.geocoder.Geocode(ctx, town, state)
	if err != nil {
		return nil, fmt.Errorf("geocode lake location: %w", err)
	}
	if point == nil {
		return nil, domain.NewValidationError("nearest_town", "could not be geocoded")
	}

	lake, err := s.lakes.Create(ctx, &domain.Lake{
		Name:        strings.TrimSpace(input.Name),
		State:       state,
		County:      strings.TrimSpace(input.County),
		NearestTown: town,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("create lake: %w", err)
	}

	s.log.InfoContext(ctx, "lake created",
		slog.Int64("lake_id", lake.ID),
		slog.String("name", lake.Name),
	)
	return lake, nil
}

// Update patches a lake. Admin only.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Lake, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	lake, err := s.lakes.Update(ctx, id, domain.LakeUpdate{
		Name:        input.Name,
		State:       input.State,
		County:      input.County,
		NearestTown: input.NearestTown,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("update lake: %w", err)
	}
	return lake, nil
}

// Delete removes a lake. Admin only.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	if err := s.lakes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lake: %w", err)
	}

	s.log.InfoContext(ctx, "lake deleted", slog.Int64("lake_id", id))
	return nil
}
