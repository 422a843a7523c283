package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/lake"
)

// lakeService defines the minimal interface needed by LakeHandler.
type lakeService interface {
	List(ctx context.Context, input lake.ListInput) ([]domain.Lake, error)
	Get(ctx context.Context, id int64) (*domain.Lake, error)
	Create(ctx context.Context, input lake.CreateInput) (*domain.Lake, error)
	Update(ctx context.Context, id int64, input lake.UpdateInput) (*domain.Lake, error)
	Delete(ctx context.Context, id int64) error
}

// LakeHandler serves lake reference data endpoints.
type LakeHandler struct {
	svc lakeService
	log *slog.Logger
}

// NewLakeHandler creates a LakeHandler.
func NewLakeHandler(svc lakeService, logger *slog.Logger) *LakeHandler {
	return &LakeHandler{svc: svc, log: logger.With("handler", "lake")}
}

type createLakeRequest struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	County      string `json:"county"`
	NearestTown string `json:"nearest_town"`
}

type updateLakeRequest struct {
	Name        *string  `json:"name"`
	State       *string  `json:"state"`
	County      *string  `json:"county"`
	NearestTown *string  `json:"nearest_town"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// List handles GET /lakes.
func (h *LakeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lakes, err := h.svc.List(r.Context(), lake.ListInput{
		Name:        q.Get("name"),
		State:       q.Get("state"),
		County:      q.Get("county"),
		NearestTown: q.Get("nearest_town"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]lakeResponse, len(lakes))
	for i := range lakes {
		out[i] = toLakeResponse(&lakes[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /lakes/{id}.
func (h *LakeHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toLakeResponse(l))
}

// Create handles POST /lakes.
func (h *LakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLakeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), lake.CreateInput{
		Name:        req.Name,
		State:       req.State,
		County:      req.County,
		NearestTown: req.NearestTown,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLakeResponse(l))
}

// Update handles PUT /lakes/{id}.
func (h *LakeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateLakeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), id, lake.UpdateInput{
		Name:        req.Name,
		State:       req.State,
		County:      req.County,
		NearestTown: req.NearestTown,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLakeResponse(l))
}

// Delete handles DELETE /lakes/{id}.
func (h *LakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
