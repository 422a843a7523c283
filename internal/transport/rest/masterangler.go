package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/service/masterangler"
)

// masterAnglerService defines the minimal interface needed by MasterAnglerHandler.
type masterAnglerService interface {
	List(ctx context.Context, input masterangler.ListInput) ([]domain.SubmissionDetails, error)
	ListApproved(ctx context.Context, userID int64) ([]domain.SubmissionDetails, error)
	Submit(ctx context.Context, catchID int64) (*domain.MasterAnglerSubmission, error)
	Review(ctx context.Context, id int64, input masterangler.ReviewInput) (*domain.MasterAnglerSubmission, error)
	Certificate(ctx context.Context, id int64) error
}

// MasterAnglerHandler serves Master Angler submission endpoints.
type MasterAnglerHandler struct {
	svc masterAnglerService
	log *slog.Logger
}

// NewMasterAnglerHandler creates a MasterAnglerHandler.
func NewMasterAnglerHandler(svc masterAnglerService, logger *slog.Logger) *MasterAnglerHandler {
	return &MasterAnglerHandler{svc: svc, log: logger.With("handler", "masterangler")}
}

type submitRequest struct {
	CatchID int64 `json:"catch_id"`
}

type reviewRequest struct {
	Reviewed *bool   `json:"reviewed"`
	Witness  *string `json:"witness"`
	PhotoURL *string `json:"photo_url"`
}

// List handles GET /masterangler.
func (h *MasterAnglerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	subs, err := h.svc.List(r.Context(), masterangler.ListInput{
		UserID:    q.Get("user_id"),
		Reviewed:  q.Get("reviewed"),
		SpeciesID: q.Get("species_id"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]submissionResponse, len(subs))
	for i := range subs {
		out[i] = toSubmissionDetailsResponse(&subs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// ListApproved handles GET /masterangler/approved/{user_id}.
func (h *MasterAnglerHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	subs, err := h.svc.ListApproved(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]submissionResponse, len(subs))
	for i := range subs {
		out[i] = toSubmissionDetailsResponse(&subs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Submit handles POST /masterangler.
func (h *MasterAnglerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.CatchID <= 0 {
		handleError(h.log, w, r, domain.NewValidationError("catch_id", "is required"))
		return
	}

	sub, err := h.svc.Submit(r.Context(), req.CatchID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// Review handles PATCH /masterangler/{id}.
func (h *MasterAnglerHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sub, err := h.svc.Review(r.Context(), id, masterangler.ReviewInput{
		Reviewed: req.Reviewed,
		Witness:  req.Witness,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// Certificate handles POST /masterangler/{id}/certificate.
func (h *MasterAnglerHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Certificate(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
