package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/species"
)

// speciesService defines the minimal interface needed by SpeciesHandler.
type speciesService interface {
	List(ctx context.Context) ([]domain.Species, error)
	Get(ctx context.Context, id int64) (*domain.Species, error)
	Create(ctx context.Context, input species.CreateInput) (*domain.Species, error)
	UpdateLength(ctx context.Context, id int64, length float64) (*domain.Species, error)
	Delete(ctx context.Context, id int64) error
}

// SpeciesHandler serves species reference data endpoints.
type SpeciesHandler struct {
	svc speciesService
	log *slog.Logger
}

// NewSpeciesHandler creates a SpeciesHandler.
func NewSpeciesHandler(svc speciesService, logger *slog.Logger) *SpeciesHandler {
	return &SpeciesHandler{svc: svc, log: logger.With("handler", "species")}
}

type createSpeciesRequest struct {
	Name               string  `json:"name"`
	MasterAnglerLength float64 `json:"master_angler_length"`
}

type updateSpeciesRequest struct {
	MasterAnglerLength float64 `json:"master_angler_length"`
}

// List handles GET /species.
func (h *SpeciesHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]speciesResponse, len(all))
	for i := range all {
		out[i] = toSpeciesResponse(&all[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /species/{id}.
func (h *SpeciesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeciesResponse(s))
}

// Create handles POST /species.
func (h *SpeciesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSpeciesRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Create(r.Context(), species.CreateInput{
		Name:               req.Name,
		MasterAnglerLength: req.MasterAnglerLength,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSpeciesResponse(s))
}

// Update handles PUT /species/{id}.
func (h *SpeciesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateSpeciesRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.UpdateLength(r.Context(), id, req.MasterAnglerLength)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeciesResponse(s))
}

// Delete handles DELETE /species/{id}.
func (h *SpeciesHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
