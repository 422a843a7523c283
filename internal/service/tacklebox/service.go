// Package tacklebox implements the favorite-lure tackle box.
package tacklebox

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

type tackleBoxRepo interface {
	GetIncludingDeleted(ctx context.Context, userID, lureID int64) (*domain.TackleBoxEntry, error)
	Create(ctx context.Context, userID, lureID int64) (*domain.TackleBoxEntry, error)
	SoftDelete(ctx context.Context, userID, lureID int64) error
	Restore(ctx context.Context, userID, lureID int64) (*domain.TackleBoxEntry, error)
	ListActiveLures(ctx context.Context, userID int64) ([]domain.Lure, error)
}

type lureRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Lure, error)
}

// Service provides tackle box operations.
type Service struct {
	entries tackleBoxRepo
	lures   lureRepo
	log     *slog.Logger
}

// NewService creates a new tackle box service.
func NewService(log *slog.Logger, entries tackleBoxRepo, lures lureRepo) *Service {
	return &Service{
		entries: entries,
		lures:   lures,
		log:     log.With("service", "tacklebox"),
	}
}

// AddResult reports how an add was satisfied. A restored favorite is not a
// new row, and the transport answers 200 instead of 201 for it.
type AddResult struct {
	Entry    *domain.TackleBoxEntry
	Restored bool
}
