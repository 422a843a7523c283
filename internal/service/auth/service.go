// Package auth implements signup, login and token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/auth"
	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type tokenManager interface {
	GenerateToken(u auth.TokenUser) (string, error)
	ValidateToken(token string) (ctxutil.Principal, error)
}

// Service provides authentication operations.
type Service struct {
	users  userRepo
	tokens tokenManager
	log    *slog.Logger
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, tokens tokenManager) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "auth"),
	}
}

// Result is a successful authentication outcome.
type Result struct {
	Token string
	User  *domain.User
}

// ValidateToken verifies a bearer token and returns its principal.
func (s *Service) ValidateToken(token string) (ctxutil.Principal, error) {
	return s.tokens.ValidateToken(token)
}

func tokenUser(u *domain.User) auth.TokenUser {
	return auth.TokenUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}
