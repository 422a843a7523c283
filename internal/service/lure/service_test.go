package lure

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type lureRepoMock struct {
	ListFunc        func(ctx context.Context, f domain.Filter) ([]domain.Lure, error)
	ListForUserFunc func(ctx context.Context, userID int64) ([]domain.Lure, error)
	BrandsFunc      func(ctx context.Context) ([]string, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.Lure, error)
	CreateFunc      func(ctx context.Context, l *domain.Lure) (*domain.Lure, error)
	UpdateFunc      func(ctx context.Context, id int64, u domain.LureUpdate) (*domain.Lure, error)
	SoftDeleteFunc  func(ctx context.Context, id int64) error
}

func (m *lureRepoMock) List(ctx context.Context, f domain.Filter) ([]domain.Lure, error) {
	return m.ListFunc(ctx, f)
}
func (m *lureRepoMock) ListForUser(ctx context.Context, userID int64) ([]domain.Lure, error) {
	return m.ListForUserFunc(ctx, userID)
}
func (m *lureRepoMock) Brands(ctx context.Context) ([]string, error) {
	return m.BrandsFunc(ctx)
}
func (m *lureRepoMock) GetByID(ctx context.Context, id int64) (*domain.Lure, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *lureRepoMock) Create(ctx context.Context, l *domain.Lure) (*domain.Lure, error) {
	return m.CreateFunc(ctx, l)
}
func (m *lureRepoMock) Update(ctx context.Context, id int64, u domain.LureUpdate) (*domain.Lure, error) {
	return m.UpdateFunc(ctx, id, u)
}
func (m *lureRepoMock) SoftDelete(ctx context.Context, id int64) error {
	return m.SoftDeleteFunc(ctx, id)
}

func newService(repo *lureRepoMock) *Service {
	return NewService(slog.New(slog.DiscardHandler), repo)
}

func asUser(id int64) context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: id})
}

func asAdmin() context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: 1, IsAdmin: true})
}

func TestListInput_UserScopeIncludesStandardLures(t *testing.T) {
	in := ListInput{UserID: "7"}
	f := in.Filter()

	require.Len(t, f.Predicates, 1)
	p := f.Predicates[0]
	require.Equal(t, domain.PredicateInSet, p.Kind)
	require.Equal(t, "user_id", p.Column)
	require.Equal(t, []int64{7, domain.StandardLureOwnerID}, p.Value)
}

func TestCreate_SetsOwner(t *testing.T) {
	repo := &lureRepoMock{
		CreateFunc: func(_ context.Context, l *domain.Lure) (*domain.Lure, error) {
			require.NotNil(t, l.UserID)
			require.Equal(t, int64(7), *l.UserID)
			created := *l
			created.ID = 11
			return &created, nil
		},
	}
	svc := newService(repo)

	l, err := svc.Create(asUser(7), CreateInput{Brand: "Rapala", Name: "Shad Rap"})
	require.NoError(t, err)
	require.Equal(t, int64(11), l.ID)
}

func TestCreate_RequiresAuth(t *testing.T) {
	svc := newService(&lureRepoMock{})

	_, err := svc.Create(context.Background(), CreateInput{Brand: "Rapala", Name: "Shad Rap"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDelete_OwnerOrAdmin(t *testing.T) {
	owner := int64(7)
	repo := &lureRepoMock{
		GetByIDFunc: func(_ context.Context, id int64) (*domain.Lure, error) {
			return &domain.Lure{ID: id, UserID: &owner}, nil
		},
		SoftDeleteFunc: func(_ context.Context, id int64) error { return nil },
	}
	svc := newService(repo)

	require.NoError(t, svc.Delete(asUser(7), 11))
	require.NoError(t, svc.Delete(asAdmin(), 11))
	require.ErrorIs(t, svc.Delete(asUser(8), 11), domain.ErrUnauthorized)
}

func TestUpdate_AdminOnly(t *testing.T) {
	svc := newService(&lureRepoMock{})

	brand := "Mepps"
	_, err := svc.Update(asUser(7), 11, UpdateInput{Brand: &brand})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
