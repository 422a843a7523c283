package catch

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type catchRepoMock struct {
	ListFunc       func(ctx context.Context, f domain.Filter) ([]domain.CatchDetails, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.CatchDetails, error)
	CreateFunc     func(ctx context.Context, c *domain.FishCatch) (*domain.FishCatch, error)
	UpdateFunc     func(ctx context.Context, id int64, u domain.CatchUpdate) (*domain.FishCatch, error)
	SoftDeleteFunc func(ctx context.Context, id int64) error
}

func (m *catchRepoMock) List(ctx context.Context, f domain.Filter) ([]domain.CatchDetails, error) {
	return m.ListFunc(ctx, f)
}
func (m *catchRepoMock) GetByID(ctx context.Context, id int64) (*domain.CatchDetails, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *catchRepoMock) Create(ctx context.Context, c *domain.FishCatch) (*domain.FishCatch, error) {
	return m.CreateFunc(ctx, c)
}
func (m *catchRepoMock) Update(ctx context.Context, id int64, u domain.CatchUpdate) (*domain.FishCatch, error) {
	return m.UpdateFunc(ctx, id, u)
}
func (m *catchRepoMock) SoftDelete(ctx context.Context, id int64) error {
	return m.SoftDeleteFunc(ctx, id)
}

type weatherMock struct {
	ObservationFunc func(ctx context.Context, lat, lon float64, ts int64) (*provider.WeatherObservation, error)
}

func (m *weatherMock) Observation(ctx context.Context, lat, lon float64, ts int64) (*provider.WeatherObservation, error) {
	return m.ObservationFunc(ctx, lat, lon, ts)
}

func newService(repo *catchRepoMock, weather *weatherMock) *Service {
	if weather == nil {
		weather = &weatherMock{}
	}
	return NewService(slog.New(slog.DiscardHandler), repo, weather)
}

func asUser(id int64) context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: id})
}

func asAdmin() context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: 1, IsAdmin: true})
}

func TestList_RequiresAtLeastOneFilter(t *testing.T) {
	svc := newService(&catchRepoMock{}, nil)

	_, err := svc.List(context.Background(), ListInput{})
	require.ErrorIs(t, err, domain.ErrValidation)

	// A sort alone does not count as a filter.
	_, err = svc.List(context.Background(), ListInput{OrderBy: "length:desc"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestList_FilterIntersection(t *testing.T) {
	var got domain.Filter
	repo := &catchRepoMock{
		ListFunc: func(_ context.Context, f domain.Filter) ([]domain.CatchDetails, error) {
			got = f
			return nil, nil
		},
	}
	svc := newService(repo, nil)

	_, err := svc.List(context.Background(), ListInput{
		UserID:       "7",
		MasterAngler: "Y",
		MinLength:    "20",
		LureIDs:      "1;2;3",
		OrderBy:      "length:asc",
	})
	require.NoError(t, err)
	require.Len(t, got.Predicates, 4)
	require.Equal(t, domain.Sort{Column: "c.length", Desc: false}, got.Sort)
}

func TestList_InvalidOrderByFallsBackToDefault(t *testing.T) {
	var got domain.Filter
	repo := &catchRepoMock{
		ListFunc: func(_ context.Context, f domain.Filter) ([]domain.CatchDetails, error) {
			got = f
			return nil, nil
		},
	}
	svc := newService(repo, nil)

	_, err := svc.List(context.Background(), ListInput{UserID: "7", OrderBy: "girth:sideways"})
	require.NoError(t, err)
	require.Equal(t, DefaultSort, got.Sort)
}

func TestCreate_Defaults(t *testing.T) {
	repo := &catchRepoMock{
		CreateFunc: func(_ context.Context, c *domain.FishCatch) (*domain.FishCatch, error) {
			require.Equal(t, domain.DefaultFishImage, c.FishImage)
			require.Equal(t, domain.DefaultWitness, c.Witness)
			require.Equal(t, int64(7), c.UserID)
			require.NotZero(t, c.CaughtAt)
			created := *c
			created.ID = 99
			return &created, nil
		},
	}
	svc := newService(repo, nil)

	c, err := svc.Create(asUser(7), CreateInput{LakeID: 1, SpeciesID: 2})
	require.NoError(t, err)
	require.Equal(t, int64(99), c.ID)
}

func TestCreate_CaughtAtFromDateAndTime(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	clock := "06:30:00"

	var got int64
	repo := &catchRepoMock{
		CreateFunc: func(_ context.Context, c *domain.FishCatch) (*domain.FishCatch, error) {
			got = c.CaughtAt
			return c, nil
		},
	}
	svc := newService(repo, nil)

	_, err := svc.Create(asUser(7), CreateInput{
		LakeID: 1, SpeciesID: 2, Date: &date, Time: &clock,
	})
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 15, 6, 30, 0, 0, time.UTC).Unix(), got)
}

func TestUpdate_OwnerOrAdmin(t *testing.T) {
	repo := &catchRepoMock{
		GetByIDFunc: func(_ context.Context, id int64) (*domain.CatchDetails, error) {
			return &domain.CatchDetails{FishCatch: domain.FishCatch{ID: id, UserID: 7}}, nil
		},
		UpdateFunc: func(_ context.Context, id int64, u domain.CatchUpdate) (*domain.FishCatch, error) {
			return &domain.FishCatch{ID: id}, nil
		},
	}
	svc := newService(repo, nil)

	length := 24.5
	_, err := svc.Update(asUser(7), 5, UpdateInput{Length: &length})
	require.NoError(t, err)

	_, err = svc.Update(asUser(8), 5, UpdateInput{Length: &length})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Update(asAdmin(), 5, UpdateInput{Length: &length})
	require.NoError(t, err)
}

func TestSetMasterAngler_AdminOnly(t *testing.T) {
	repo := &catchRepoMock{
		UpdateFunc: func(_ context.Context, id int64, u domain.CatchUpdate) (*domain.FishCatch, error) {
			require.NotNil(t, u.MasterAngler)
			require.True(t, *u.MasterAngler)
			return &domain.FishCatch{ID: id, MasterAngler: true}, nil
		},
	}
	svc := newService(repo, nil)

	_, err := svc.SetMasterAngler(asUser(7), 5, true)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	c, err := svc.SetMasterAngler(asAdmin(), 5, true)
	require.NoError(t, err)
	require.True(t, c.MasterAngler)
}

func TestWeather_RequiresAllParams(t *testing.T) {
	svc := newService(&catchRepoMock{}, nil)

	lat, lon := 44.5, -93.2
	_, err := svc.Weather(context.Background(), WeatherInput{Latitude: &lat, Longitude: &lon})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestWeather_ProxiesObservation(t *testing.T) {
	weather := &weatherMock{
		ObservationFunc: func(_ context.Context, lat, lon float64, ts int64) (*provider.WeatherObservation, error) {
			require.Equal(t, 44.5, lat)
			require.Equal(t, -93.2, lon)
			require.Equal(t, int64(1700000000), ts)
			return &provider.WeatherObservation{Temperature: 41.2}, nil
		},
	}
	svc := newService(&catchRepoMock{}, weather)

	lat, lon, ts := 44.5, -93.2, int64(1700000000)
	obs, err := svc.Weather(context.Background(), WeatherInput{Latitude: &lat, Longitude: &lon, Timestamp: &ts})
	require.NoError(t, err)
	require.Equal(t, 41.2, obs.Temperature)
}
