// Package user implements profile management operations.
package user

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

type userRepo interface {
	List(ctx context.Context, f domain.Filter) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, u domain.UserUpdate) (*domain.User, error)
	SoftDelete(ctx context.Context, id int64) error
	Stats(ctx context.Context, userID int64) (*domain.UserStats, error)
}

// Service provides user profile operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}

// Profile is a user together with their activity counts.
type Profile struct {
	User  *domain.User
	Stats *domain.UserStats
}
