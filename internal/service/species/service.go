// Package species implements fish species reference data management.
package species

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type speciesRepo interface {
	List(ctx context.Context) ([]domain.Species, error)
	GetByID(ctx context.Context, id int64) (*domain.Species, error)
	Create(ctx context.Context, s *domain.Species) (*domain.Species, error)
	UpdateLength(ctx context.Context, id int64, length float64) (*domain.Species, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Service provides species operations.
type Service struct {
	species speciesRepo
	log     *slog.Logger
}

// NewService creates a new species service.
func NewService(log *slog.Logger, species speciesRepo) *Service {
	return &Service{
		species: species,
		log:     log.With("service", "species"),
	}
}

// CreateInput holds the parameters for creating a species.
type CreateInput struct {
	Name               string
	MasterAnglerLength float64
}

// Validate checks the create input.
func (in *CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if in.MasterAnglerLength <= 0 {
		errs = append(errs, domain.FieldError{Field: "master_angler_length", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns all species. Public.
func (s *Service) List(ctx context.Context) ([]domain.Species, error) {
	species, err := s.species.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	return species, nil
}

// Get returns a species by id. Public.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Species, error) {
	return s.species.GetByID(ctx, id)
}

// Create adds a species. Admin only.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Species, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.species.Create(ctx, &domain.Species{
		Name:               strings.TrimSpace(input.Name),
		MasterAnglerLength: input.MasterAnglerLength,
	})
	if err != nil {
		return nil, fmt.Errorf("create species: %w", err)
	}

	s.log.InfoContext(ctx, "species created",
		slog.Int64("species_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// UpdateLength changes the Master Angler qualifying length. Admin only.
func (s *Service) UpdateLength(ctx context.Context, id int64, length float64) (*domain.Species, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}
	if length <= 0 {
		return nil, domain.NewValidationError("master_angler_length", "must be positive")
	}

	updated, err := s.species.UpdateLength(ctx, id, length)
	if err != nil {
		return nil, fmt.Errorf("update species length: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a species. Admin only.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	if err := s.species.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete species: %w", err)
	}

	s.log.InfoContext(ctx, "species deleted", slog.Int64("species_id", id))
	return nil
}
