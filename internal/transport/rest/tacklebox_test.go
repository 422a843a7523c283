package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/tacklebox"
)

type tackleBoxServiceMock struct {
	AddFunc     func(ctx context.Context, lureID int64) (*tacklebox.AddResult, error)
	RemoveFunc  func(ctx context.Context, lureID int64) error
	RestoreFunc func(ctx context.Context, lureID int64) (*domain.TackleBoxEntry, error)
	ListFunc    func(ctx context.Context, userID int64) ([]domain.Lure, error)
}

func (m *tackleBoxServiceMock) Add(ctx context.Context, lureID int64) (*tacklebox.AddResult, error) {
	return m.AddFunc(ctx, lureID)
}
func (m *tackleBoxServiceMock) Remove(ctx context.Context, lureID int64) error {
	return m.RemoveFunc(ctx, lureID)
}
func (m *tackleBoxServiceMock) Restore(ctx context.Context, lureID int64) (*domain.TackleBoxEntry, error) {
	return m.RestoreFunc(ctx, lureID)
}
func (m *tackleBoxServiceMock) List(ctx context.Context, userID int64) ([]domain.Lure, error) {
	return m.ListFunc(ctx, userID)
}

func newTackleBoxHandler(svc *tackleBoxServiceMock) *TackleBoxHandler {
	return NewTackleBoxHandler(svc, slog.New(slog.DiscardHandler))
}

func TestTackleBoxAdd_NewEntryResponds201(t *testing.T) {
	h := newTackleBoxHandler(&tackleBoxServiceMock{
		AddFunc: func(_ context.Context, lureID int64) (*tacklebox.AddResult, error) {
			return &tacklebox.AddResult{
				Entry: &domain.TackleBoxEntry{ID: 1, UserID: 7, LureID: lureID},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Add(rec, httptest.NewRequest(http.MethodPost, "/tackle-box", jsonBody(`{"lure_id":4}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestTackleBoxAdd_RestoredEntryResponds200(t *testing.T) {
	h := newTackleBoxHandler(&tackleBoxServiceMock{
		AddFunc: func(_ context.Context, lureID int64) (*tacklebox.AddResult, error) {
			return &tacklebox.AddResult{
				Entry:    &domain.TackleBoxEntry{ID: 1, UserID: 7, LureID: lureID},
				Restored: true,
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Add(rec, httptest.NewRequest(http.MethodPost, "/tackle-box", jsonBody(`{"lure_id":4}`)))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTackleBoxAdd_MissingLureID(t *testing.T) {
	h := newTackleBoxHandler(&tackleBoxServiceMock{
		AddFunc: func(_ context.Context, _ int64) (*tacklebox.AddResult, error) {
			t.Fatal("add must not be called")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Add(rec, httptest.NewRequest(http.MethodPost, "/tackle-box", jsonBody(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
