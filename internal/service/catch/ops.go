package catch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// List returns catches matching the filters. At least one filter is
// required; an unconstrained listing is rejected.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.CatchDetails, error) {
	f := input.Filter()
	if f.Empty() {
		return nil, domain.NewValidationError("filters", "at least one filter required")
	}

	catches, err := s.catches.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list catches: %w", err)
	}
	return catches, nil
}

// Get returns a catch with its reference data. Public.
func (s *Service) Get(ctx context.Context, id int64) (*domain.CatchDetails, error) {
	return s.catches.GetByID(ctx, id)
}

// Create logs a catch for the authenticated user. A missing photo falls back
// to the stock image and a missing witness to the NA marker.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.FishCatch, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.FishCatch{
		UserID:            p.UserID,
		LakeID:            input.LakeID,
		SpeciesID:         input.SpeciesID,
		LureID:            input.LureID,
		Length:            input.Length,
		Weight:            input.Weight,
		Date:              input.Date,
		Time:              input.Time,
		Barometric:        input.Barometric,
		Temperature:       input.Temperature,
		WeatherConditions: input.WeatherConditions,
		WindDirection:     input.WindDirection,
		WindSpeed:         input.WindSpeed,
		FishImage:         input.FishImage,
		Witness:           input.Witness,
	}
	if c.FishImage == "" {
		c.FishImage = domain.DefaultFishImage
	}
	if c.Witness == "" {
		c.Witness = domain.DefaultWitness
	}
	c.CaughtAt = caughtAt(input.Date, input.Time)

	created, err := s.catches.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create catch: %w", err)
	}

	s.log.InfoContext(ctx, "catch logged",
		slog.Int64("catch_id", created.ID),
		slog.Int64("user_id", p.UserID),
		slog.Int64("species_id", created.SpeciesID),
	)
	return created, nil
}

// Update patches a catch. Owner or admin.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.FishCatch, error) {
	if err := s.requireOwnerOrAdmin(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.catches.Update(ctx, id, domain.CatchUpdate{
		LakeID:            input.LakeID,
		SpeciesID:         input.SpeciesID,
		LureID:            input.LureID,
		Length:            input.Length,
		Weight:            input.Weight,
		Date:              input.Date,
		Time:              input.Time,
		Barometric:        input.Barometric,
		Temperature:       input.Temperature,
		WeatherConditions: input.WeatherConditions,
		WindDirection:     input.WindDirection,
		WindSpeed:         input.WindSpeed,
		FishImage:         input.FishImage,
		Witness:           input.Witness,
	})
	if err != nil {
		return nil, fmt.Errorf("update catch: %w", err)
	}
	return updated, nil
}

// SetMasterAngler sets the master angler flag on a catch. Admin only.
func (s *Service) SetMasterAngler(ctx context.Context, id int64, flag bool) (*domain.FishCatch, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	updated, err := s.catches.Update(ctx, id, domain.CatchUpdate{MasterAngler: &flag})
	if err != nil {
		return nil, fmt.Errorf("set master angler flag: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a catch. Owner or admin.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.requireOwnerOrAdmin(ctx, id); err != nil {
		return err
	}

	if err := s.catches.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete catch: %w", err)
	}

	s.log.InfoContext(ctx, "catch deleted", slog.Int64("catch_id", id))
	return nil
}

func (s *Service) requireOwnerOrAdmin(ctx context.Context, catchID int64) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.IsAdmin {
		return nil
	}

	c, err := s.catches.GetByID(ctx, catchID)
	if err != nil {
		return fmt.Errorf("get catch: %w", err)
	}
	if c.UserID != p.UserID {
		return fmt.Errorf("cannot act on another user's resource: %w", domain.ErrUnauthorized)
	}
	return nil
}

// caughtAt derives the unix sort timestamp from the reported date and
// clock time. Without a date the moment of logging is used.
func caughtAt(date *time.Time, clock *string) int64 {
	if date == nil {
		return time.Now().Unix()
	}

	ts := *date
	if clock != nil {
		if t, err := time.Parse("15:04:05", *clock); err == nil {
			ts = time.Date(ts.Year(), ts.Month(), ts.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, ts.Location())
		}
	}
	return ts.Unix()
}
