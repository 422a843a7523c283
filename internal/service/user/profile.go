package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// Get returns a user's profile with activity counts.
// Only the owner or an admin may read a profile.
func (s *Service) Get(ctx context.Context, userID int64) (*Profile, error) {
	if err := requireOwnerOrAdmin(ctx, userID); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	stats, err := s.users.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}

	return &Profile{User: u, Stats: stats}, nil
}

// Update patches a user's own profile fields.
func (s *Service) Update(ctx context.Context, userID int64, input UpdateInput) (*domain.User, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if p.UserID != userID {
		return nil, fmt.Errorf("cannot act on another user's resource: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Empty() {
		return s.users.GetByID(ctx, userID)
	}

	u, err := s.users.Update(ctx, userID, domain.UserUpdate{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.Int64("user_id", userID))
	return u, nil
}

// Delete soft-deletes a user. Owner or admin.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	if err := requireOwnerOrAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.users.SoftDelete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.Int64("user_id", userID))
	return nil
}

func requireOwnerOrAdmin(ctx context.Context, userID int64) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.UserID != userID && !p.IsAdmin {
		return fmt.Errorf("cannot act on another user's resource: %w", domain.ErrUnauthorized)
	}
	return nil
}
