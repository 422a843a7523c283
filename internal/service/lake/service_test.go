package lake

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type lakeRepoMock struct {
	ListFunc    func(ctx context.Context, f domain.Filter) ([]domain.Lake, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Lake, error)
	CreateFunc  func(ctx context.Context, l *domain.Lake) (*domain.Lake, error)
	UpdateFunc  func(ctx context.Context, id int64, u domain.LakeUpdate) (*domain.Lake, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *lakeRepoMock) List(ctx context.Context, f domain.Filter) ([]domain.Lake, error) {
	return m.ListFunc(ctx, f)
}
func (m *lakeRepoMock) GetByID(ctx context.Context, id int64) (*domain.Lake, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *lakeRepoMock) Create(ctx context.Context, l *domain.Lake) (*domain.Lake, error) {
	return m.CreateFunc(ctx, l)
}
func (m *lakeRepoMock) Update(ctx context.Context, id int64, u domain.LakeUpdate) (*domain.Lake, error) {
	return m.UpdateFunc(ctx, id, u)
}
func (m *lakeRepoMock) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type geocoderMock struct {
	GeocodeFunc func(ctx context.Context, town, state string) (*provider.GeoPoint, error)
}

func (m *geocoderMock) Geocode(ctx context.Context, town, state string) (*provider.GeoPoint, error) {
	return m.GeocodeFunc(ctx, town, state)
}

func adminCtx() context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: 1, IsAdmin: true})
}

func userCtx() context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: 5})
}

func TestCreate_GeocodesLocation(t *testing.T) {
	geo := &geocoderMock{
		GeocodeFunc: func(_ context.Context, town, state string) (*provider.GeoPoint, error) {
			require.Equal(t, "Brainerd", town)
			require.Equal(t, "MN", state)
			return &provider.GeoPoint{Latitude: 46.358, Longitude: -94.2}, nil
		},
	}
	repo := &lakeRepoMock{
		CreateFunc: func(_ context.Context, l *domain.Lake) (*domain.Lake, error) {
			require.Equal(t, 46.358, l.Latitude)
			require.Equal(t, -94.2, l.Longitude)
			created := *l
			created.ID = 3
			return &created, nil
		},
	}
	svc := NewService(slog.New(slog.DiscardHandler), repo, geo)

	lake, err := svc.Create(adminCtx(), CreateInput{
		Name: "Gull Lake", State: "MN", County: "Cass", NearestTown: "Brainerd",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), lake.ID)
}

func TestCreate_GeocodeFailureAborts(t *testing.T) {
	boom := errors.New("upstream down")
	geo := &geocoderMock{
		GeocodeFunc: func(_ context.Context, _, _ string) (*provider.GeoPoint, error) {
			return nil, boom
		},
	}
	svc := NewService(slog.New(slog.DiscardHandler), &lakeRepoMock{}, geo)

	_, err := svc.Create(adminCtx(), CreateInput{Name: "X", State: "MN", NearestTown: "Nowhere"})
	require.ErrorIs(t, err, boom)
}

func TestCreate_UnknownPlaceRejected(t *testing.T) {
	geo := &geocoderMock{
		GeocodeFunc: func(_ context.Context, _, _ string) (*provider.GeoPoint, error) {
			return nil, nil
		},
	}
	svc := NewService(slog.New(slog.DiscardHandler), &lakeRepoMock{}, geo)

	_, err := svc.Create(adminCtx(), CreateInput{Name: "X", State: "MN", NearestTown: "Nowhere"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_AdminOnly(t *testing.T) {
	svc := NewService(slog.New(slog.DiscardHandler), &lakeRepoMock{}, &geocoderMock{})

	_, err := svc.Create(userCtx(), CreateInput{Name: "X", State: "MN", NearestTown: "Y"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	err = svc.Delete(userCtx(), 1)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Update(userCtx(), 1, UpdateInput{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestList_Public(t *testing.T) {
	repo := &lakeRepoMock{
		ListFunc: func(_ context.Context, f domain.Filter) ([]domain.Lake, error) {
			require.Len(t, f.Predicates, 1)
			require.Equal(t, "state", f.Predicates[0].Column)
			return []domain.Lake{{ID: 1}}, nil
		},
	}
	svc := NewService(slog.New(slog.DiscardHandler), repo, &geocoderMock{})

	lakes, err := svc.List(context.Background(), ListInput{State: "MN"})
	require.NoError(t, err)
	require.Len(t, lakes, 1)
}
