package auth

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// Logout acknowledges a logout. Tokens are stateless, so there is nothing to
// revoke server-side; the client discards the token.
func (s *Service) Logout(ctx context.Context) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", p.UserID))
	return nil
}
