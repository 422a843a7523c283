package tacklebox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// Add favorites a lure for the authenticated user.
// An active favorite is a conflict; a previously removed one is restored.
func (s *Service) Add(ctx context.Context, lureID int64) (*AddResult, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.lures.GetByID(ctx, lureID); err != nil {
		return nil, fmt.Errorf("get lure: %w", err)
	}

	existing, err := s.entries.GetIncludingDeleted(ctx, p.UserID, lureID)
	switch {
	case err == nil && !existing.IsDeleted():
		return nil, fmt.Errorf("lure %d already in tackle box: %w", lureID, domain.ErrConflict)

	case err == nil:
		restored, restoreErr := s.entries.Restore(ctx, p.UserID, lureID)
		if restoreErr != nil {
			return nil, fmt.Errorf("restore tackle box entry: %w", restoreErr)
		}
		s.log.InfoContext(ctx, "tackle box entry restored",
			slog.Int64("user_id", p.UserID), slog.Int64("lure_id", lureID))
		return &AddResult{Entry: restored, Restored: true}, nil

	case errors.Is(err, domain.ErrNotFound):
		created, createErr := s.entries.Create(ctx, p.UserID, lureID)
		if createErr != nil {
			return nil, fmt.Errorf("create tackle box entry: %w", createErr)
		}
		s.log.InfoContext(ctx, "tackle box entry created",
			slog.Int64("user_id", p.UserID), slog.Int64("lure_id", lureID))
		return &AddResult{Entry: created}, nil

	default:
		return nil, fmt.Errorf("get tackle box entry: %w", err)
	}
}

// Remove un-favorites a lure. Removing a lure that is not an active favorite
// reports not found.
func (s *Service) Remove(ctx context.Context, lureID int64) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.SoftDelete(ctx, p.UserID, lureID); err != nil {
		return fmt.Errorf("remove tackle box entry: %w", err)
	}

	s.log.InfoContext(ctx, "tackle box entry removed",
		slog.Int64("user_id", p.UserID), slog.Int64("lure_id", lureID))
	return nil
}

// Restore explicitly un-deletes a removed favorite. Restoring an entry that
// was never removed is a validation error, an unknown pair is not found.
func (s *Service) Restore(ctx context.Context, lureID int64) (*domain.TackleBoxEntry, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.entries.GetIncludingDeleted(ctx, p.UserID, lureID)
	if err != nil {
		return nil, fmt.Errorf("get tackle box entry: %w", err)
	}
	if !existing.IsDeleted() {
		return nil, domain.NewValidationError("lure_id", "entry is not deleted")
	}

	restored, err := s.entries.Restore(ctx, p.UserID, lureID)
	if err != nil {
		return nil, fmt.Errorf("restore tackle box entry: %w", err)
	}

	s.log.InfoContext(ctx, "tackle box entry restored",
		slog.Int64("user_id", p.UserID), slog.Int64("lure_id", lureID))
	return restored, nil
}

// List returns the active lures in a user's tackle box.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Lure, error) {
	lures, err := s.entries.ListActiveLures(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tackle box: %w", err)
	}
	return lures, nil
}
