package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/lure"
)

// lureService defines the minimal interface needed by LureHandler.
type lureService interface {
	List(ctx context.Context, input lure.ListInput) ([]domain.Lure, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Lure, error)
	Brands(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64) (*domain.Lure, error)
	Create(ctx context.Context, input lure.CreateInput) (*domain.Lure, error)
	Update(ctx context.Context, id int64, input lure.UpdateInput) (*domain.Lure, error)
	Delete(ctx context.Context, id int64) error
}

// LureHandler serves lure catalog endpoints.
type LureHandler struct {
	svc lureService
	log *slog.Logger
}

// NewLureHandler creates a LureHandler.
func NewLureHandler(svc lureService, logger *slog.Logger) *LureHandler {
	return &LureHandler{svc: svc, log: logger.With("handler", "lure")}
}

type createLureRequest struct {
	Brand string `json:"brand"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

type updateLureRequest struct {
	Brand *string `json:"brand"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Size  *string `json:"size"`
}

// List handles GET /lures.
func (h *LureHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lures, err := h.svc.List(r.Context(), lure.ListInput{
		Brand:  q.Get("brand"),
		Name:   q.Get("name"),
		Color:  q.Get("color"),
		Size:   q.Get("size"),
		UserID: q.Get("user_id"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLureResponses(lures))
}

// ListForUser handles GET /lures/user/{user_id}.
func (h *LureHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lures, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLureResponses(lures))
}

// Brands handles GET /lures/brands.
func (h *LureHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.Brands(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"brands": brands})
}

// Get handles GET /lures/{id}.
func (h *LureHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLureResponse(l))
}

// Create handles POST /lures.
func (h *LureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLureRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), lure.CreateInput{
		Brand: req.Brand,
		Name:  req.Name,
		Color: req.Color,
		Size:  req.Size,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLureResponse(l))
}

// Update handles PUT /lures/{id}.
func (h *LureHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateLureRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), id, lure.UpdateInput{
		Brand: req.Brand,
		Name:  req.Name,
		Color: req.Color,
		Size:  req.Size,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLureResponse(l))
}

// Delete handles DELETE /lures/{id}.
func (h *LureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
