// Package lure implements lure inventory management.
package lure

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

type lureRepo interface {
	List(ctx context.Context, f domain.Filter) ([]domain.Lure, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Lure, error)
	Brands(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*domain.Lure, error)
	Create(ctx context.Context, l *domain.Lure) (*domain.Lure, error)
	Update(ctx context.Context, id int64, u domain.LureUpdate) (*domain.Lure, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Service provides lure operations.
type Service struct {
	lures lureRepo
	log   *slog.Logger
}

// NewService creates a new lure service.
func NewService(log *slog.Logger, lures lureRepo) *Service {
	return &Service{
		lures: lures,
		log:   log.With("service", "lure"),
	}
}
