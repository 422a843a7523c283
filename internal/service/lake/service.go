// Package lake implements lake reference data management.
package lake

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
)

type lakeRepo interface {
	List(ctx context.Context, f domain.Filter) ([]domain.Lake, error)
	GetByID(ctx context.Context, id int64) (*domain.Lake, error)
	Create(ctx context.Context, l *domain.Lake) (*domain.Lake, error)
	Update(ctx context.Context, id int64, u domain.LakeUpdate) (*domain.Lake, error)
	Delete(ctx context.Context, id int64) error
}

type geocoder interface {
	Geocode(ctx context.Context, town, state string) (*provider.GeoPoint, error)
}

// Service provides lake operations.
type Service struct {
	lakes    lakeRepo
	geocoder geocoder
	log      *slog.Logger
}

// NewService creates a new lake service.
func NewService(log *slog.Logger, lakes lakeRepo, geocoder geocoder) *Service {
	return &Service{
		lakes:    lakes,
		geocoder: geocoder,
		log:      log.With("service", "lake"),
	}
}
