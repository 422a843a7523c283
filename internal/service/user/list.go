package user

import (
	"context"
	"fmt"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// List returns users matching the filters. Admin only.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	users, err := s.users.List(ctx, input.Filter())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
