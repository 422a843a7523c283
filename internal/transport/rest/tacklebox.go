package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/tacklebox"
)

// tackleBoxService defines the minimal interface needed by TackleBoxHandler.
type tackleBoxService interface {
	Add(ctx context.Context, lureID int64) (*tacklebox.AddResult, error)
	Remove(ctx context.Context, lureID int64) error
	Restore(ctx context.Context, lureID int64) (*domain.TackleBoxEntry, error)
	List(ctx context.Context, userID int64) ([]domain.Lure, error)
}

// TackleBoxHandler serves tackle box favorites endpoints.
type TackleBoxHandler struct {
	svc tackleBoxService
	log *slog.Logger
}

// NewTackleBoxHandler creates a TackleBoxHandler.
func NewTackleBoxHandler(svc tackleBoxService, logger *slog.Logger) *TackleBoxHandler {
	return &TackleBoxHandler{svc: svc, log: logger.With("handler", "tacklebox")}
}

type tackleBoxRequest struct {
	LureID int64 `json:"lure_id"`
}

func (req *tackleBoxRequest) validate() error {
	if req.LureID <= 0 {
		return domain.NewValidationError("lure_id", "is required")
	}
	return nil
}

// Add handles POST /tackle-box. A restored favorite responds 200, a new
// one 201.
func (h *TackleBoxHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req tackleBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Add(r.Context(), req.LureID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Restored {
		status = http.StatusOK
	}
	writeJSON(w, status, toTackleBoxEntryResponse(result.Entry))
}

// Remove handles DELETE /tackle-box.
func (h *TackleBoxHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req tackleBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Remove(r.Context(), req.LureID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// Restore handles POST /tackle-box/restore.
func (h *TackleBoxHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req tackleBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Restore(r.Context(), req.LureID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTackleBoxEntryResponse(entry))
}

// List handles GET /tackle-box/{user_id}.
func (h *TackleBoxHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lures, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLureResponses(lures))
}
