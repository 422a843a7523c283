// Package catch implements fish catch logging and the weather proxy.
package catch

import (
	"context"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
)

type catchRepo interface {
	List(ctx context.Context, f domain.Filter) ([]domain.CatchDetails, error)
	GetByID(ctx context.Context, id int64) (*domain.CatchDetails, error)
	Create(ctx context.Context, c *domain.FishCatch) (*domain.FishCatch, error)
	Update(ctx context.Context, id int64, u domain.CatchUpdate) (*domain.FishCatch, error)
	SoftDelete(ctx context.Context, id int64) error
}

type weatherProvider interface {
	Observation(ctx context.Context, lat, lon float64, ts int64) (*provider.WeatherObservation, error)
}

// Service provides catch operations.
type Service struct {
	catches catchRepo
	weather weatherProvider
	log     *slog.Logger
}

// NewService creates a new catch service.
func NewService(log *slog.Logger, catches catchRepo, weather weatherProvider) *Service {
	return &Service{
		catches: catches,
		weather: weather,
		log:     log.With("service", "catch"),
	}
}
