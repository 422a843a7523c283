// Package masterangler implements the Master Angler certification workflow.
package masterangler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

type submissionRepo interface {
	List(ctx context.Context, f domain.Filter) ([]domain.SubmissionDetails, error)
	GetByID(ctx context.Context, id int64) (*domain.SubmissionDetails, error)
	Create(ctx context.Context, userID, catchID int64) (*domain.MasterAnglerSubmission, error)
	SetReviewed(ctx context.Context, id int64, reviewed bool) (*domain.MasterAnglerSubmission, error)
	ListApprovedByUser(ctx context.Context, userID int64) ([]domain.SubmissionDetails, error)
}

type catchRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.CatchDetails, error)
	SetMasterAngler(ctx context.Context, id int64, witness, fishImage string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides Master Angler submission operations.
type Service struct {
	submissions submissionRepo
	catches     catchRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Master Angler service.
func NewService(log *slog.Logger, submissions submissionRepo, catches catchRepo, tx txManager) *Service {
	return &Service{
		submissions: submissions,
		catches:     catches,
		tx:          tx,
		log:         log.With("service", "masterangler"),
	}
}

// ListInput holds the raw query parameters of a submission listing.
type ListInput struct {
	UserID    string
	Reviewed  string
	SpeciesID string
}

// Filter builds the filter descriptor for the listing. The species filter
// addresses the joined catch table.
func (in *ListInput) Filter() domain.Filter {
	var f domain.Filter
	f.IDList("m.user_id", in.UserID)
	switch strings.ToLower(strings.TrimSpace(in.Reviewed)) {
	case "true", "y":
		f.Equals("m.reviewed", true)
	case "false", "n":
		f.Equals("m.reviewed", false)
	}
	f.IDList("c.species_id", in.SpeciesID)
	return f
}

// ReviewInput holds the partial fields of a submission review patch.
type ReviewInput struct {
	Reviewed *bool
	Witness  *string
	PhotoURL *string
}

// Empty reports whether the patch changes nothing.
func (in *ReviewInput) Empty() bool {
	return in.Reviewed == nil && in.Witness == nil && in.PhotoURL == nil
}
