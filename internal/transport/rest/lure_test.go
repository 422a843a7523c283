package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/lure"
	"github.com/msaemrow/anglers-index-api/internal/transport/middleware"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type lureServiceMock struct {
	ListFunc        func(ctx context.Context, input lure.ListInput) ([]domain.Lure, error)
	ListForUserFunc func(ctx context.Context, userID int64) ([]domain.Lure, error)
	BrandsFunc      func(ctx context.Context) ([]string, error)
	GetFunc         func(ctx context.Context, id int64) (*domain.Lure, error)
	CreateFunc      func(ctx context.Context, input lure.CreateInput) (*domain.Lure, error)
	UpdateFunc      func(ctx context.Context, id int64, input lure.UpdateInput) (*domain.Lure, error)
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (m *lureServiceMock) List(ctx context.Context, input lure.ListInput) ([]domain.Lure, error) {
	return m.ListFunc(ctx, input)
}
func (m *lureServiceMock) ListForUser(ctx context.Context, userID int64) ([]domain.Lure, error) {
	return m.ListForUserFunc(ctx, userID)
}
func (m *lureServiceMock) Brands(ctx context.Context) ([]string, error) {
	return m.BrandsFunc(ctx)
}
func (m *lureServiceMock) Get(ctx context.Context, id int64) (*domain.Lure, error) {
	return m.GetFunc(ctx, id)
}
func (m *lureServiceMock) Create(ctx context.Context, input lure.CreateInput) (*domain.Lure, error) {
	return m.CreateFunc(ctx, input)
}
func (m *lureServiceMock) Update(ctx context.Context, id int64, input lure.UpdateInput) (*domain.Lure, error) {
	return m.UpdateFunc(ctx, id, input)
}
func (m *lureServiceMock) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (ctxutil.Principal, error) {
	if token != "good-token" {
		return ctxutil.Principal{}, fmt.Errorf("token is invalid")
	}
	return ctxutil.Principal{UserID: 7, Username: "angler"}, nil
}

// newLureServer wires a mux with only the lure routes behind the real
// auth middleware, backed by an in-memory store.
func newLureServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := map[int64]domain.Lure{}
	nextID := int64(1)

	svc := &lureServiceMock{
		CreateFunc: func(_ context.Context, input lure.CreateInput) (*domain.Lure, error) {
			owner := int64(7)
			l := domain.Lure{ID: nextID, UserID: &owner, Brand: input.Brand, Name: input.Name, Color: input.Color, Size: input.Size}
			store[nextID] = l
			nextID++
			return &l, nil
		},
		ListFunc: func(_ context.Context, input lure.ListInput) ([]domain.Lure, error) {
			var out []domain.Lure
			for _, l := range store {
				if input.Name == "" || strings.Contains(strings.ToLower(l.Name), strings.ToLower(input.Name)) {
					out = append(out, l)
				}
			}
			return out, nil
		},
		GetFunc: func(_ context.Context, id int64) (*domain.Lure, error) {
			l, ok := store[id]
			if !ok {
				return nil, fmt.Errorf("lure %d: %w", id, domain.ErrNotFound)
			}
			return &l, nil
		},
		DeleteFunc: func(_ context.Context, id int64) error {
			if _, ok := store[id]; !ok {
				return fmt.Errorf("lure %d: %w", id, domain.ErrNotFound)
			}
			delete(store, id)
			return nil
		},
	}

	log := slog.New(slog.DiscardHandler)
	h := NewLureHandler(svc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /lures", h.List)
	mux.HandleFunc("GET /lures/{id}", h.Get)
	mux.Handle("POST /lures", middleware.RequireAuth(http.HandlerFunc(h.Create)))
	mux.Handle("DELETE /lures/{id}", middleware.RequireAuth(http.HandlerFunc(h.Delete)))

	srv := httptest.NewServer(middleware.Auth(stubValidator{})(mux))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func TestLureLifecycle(t *testing.T) {
	srv := newLureServer(t)
	client := srv.Client()

	// Create requires a token.
	resp := doJSON(t, client, http.MethodPost, srv.URL+"/lures", "", map[string]string{
		"brand": "Rapala", "name": "Shad Rap", "color": "perch", "size": "7",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/lures", "good-token", map[string]string{
		"brand": "Rapala", "name": "Shad Rap", "color": "perch", "size": "7",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created lureResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, "Shad Rap", created.Name)

	// Substring search finds it.
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/lures?name=shad", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []lureResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	resp.Body.Close()
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)

	// Delete, then fetching it reports not found.
	resp = doJSON(t, client, http.MethodDelete,
		fmt.Sprintf("%s/lures/%d", srv.URL, created.ID), "good-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, client, http.MethodGet,
		fmt.Sprintf("%s/lures/%d", srv.URL, created.ID), "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestLureList_InvalidTokenRejected(t *testing.T) {
	srv := newLureServer(t)

	resp := doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/lures", "bad-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
