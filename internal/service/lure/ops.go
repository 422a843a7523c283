package lure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// List returns lures matching the filters. Public.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Lure, error) {
	lures, err := s.lures.List(ctx, input.Filter())
	if err != nil {
		return nil, fmt.Errorf("list lures: %w", err)
	}
	return lures, nil
}

// ListForUser returns a user's lures plus the shared standard lures. Public.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Lure, error) {
	lures, err := s.lures.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user lures: %w", err)
	}
	return lures, nil
}

// Brands returns the distinct brand names. Public.
func (s *Service) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.lures.Brands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

// Get returns a lure by id. Public.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Lure, error) {
	return s.lures.GetByID(ctx, id)
}

// Create adds a lure owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Lure, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	owner := p.UserID
	created, err := s.lures.Create(ctx, &domain.Lure{
		UserID: &owner,
		Brand:  strings.TrimSpace(input.Brand),
		Name:   strings.TrimSpace(input.Name),
		Color:  strings.TrimSpace(input.Color),
		Size:   strings.TrimSpace(input.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("create lure: %w", err)
	}

	s.log.InfoContext(ctx, "lure created",
		slog.Int64("lure_id", created.ID),
		slog.Int64("user_id", p.UserID),
	)
	return created, nil
}

// Update patches a lure. Admin only; standard lures are shared state and
// user-owned lures are corrected through support.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Lure, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	updated, err := s.lures.Update(ctx, id, domain.LureUpdate{
		Brand: input.Brand,
		Name:  input.Name,
		Color: input.Color,
		Size:  input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("update lure: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a lure. The owner or an admin may delete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if !p.IsAdmin {
		l, err := s.lures.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get lure: %w", err)
		}
		if l.UserID == nil || *l.UserID != p.UserID {
			return fmt.Errorf("cannot act on another user's resource: %w", domain.ErrUnauthorized)
		}
	}

	if err := s.lures.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete lure: %w", err)
	}

	s.log.InfoContext(ctx, "lure deleted",
		slog.Int64("lure_id", id),
		slog.Int64("user_id", p.UserID),
	)
	return nil
}
