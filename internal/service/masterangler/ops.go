package masterangler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// List returns submissions matching the filters.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.SubmissionDetails, error) {
	subs, err := s.submissions.List(ctx, input.Filter())
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

// ListApproved returns a user's reviewed submissions. A user with no
// approved submissions reports not found.
func (s *Service) ListApproved(ctx context.Context, userID int64) ([]domain.SubmissionDetails, error) {
	subs, err := s.submissions.ListApprovedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list approved submissions: %w", err)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("no approved submissions for user %d: %w", userID, domain.ErrNotFound)
	}
	return subs, nil
}

// Submit enters a catch into the certification workflow. Admin only; the
// catch must exist.
func (s *Service) Submit(ctx context.Context, catchID int64) (*domain.MasterAnglerSubmission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}

	c, err := s.catches.GetByID(ctx, catchID)
	if err != nil {
		return nil, fmt.Errorf("get catch: %w", err)
	}

	sub, err := s.submissions.Create(ctx, c.UserID, catchID)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.InfoContext(ctx, "master angler submission created",
		slog.Int64("submission_id", sub.ID),
		slog.Int64("catch_id", catchID),
	)
	return sub, nil
}

// Review patches a submission. The reviewed flag and the catch's witness and
// photo are updated together in one transaction. Admin only.
func (s *Service) Review(ctx context.Context, id int64, input ReviewInput) (*domain.MasterAnglerSubmission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}
	if input.Empty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	result := &sub.MasterAnglerSubmission
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Reviewed != nil {
			updated, err := s.submissions.SetReviewed(txCtx, id, *input.Reviewed)
			if err != nil {
				return fmt.Errorf("set reviewed: %w", err)
			}
			result = updated
		}

		if input.Witness != nil || input.PhotoURL != nil {
			witness := sub.Catch.Witness
			if input.Witness != nil {
				witness = *input.Witness
			}
			image := sub.Catch.FishImage
			if input.PhotoURL != nil {
				image = *input.PhotoURL
			}
			if err := s.catches.SetMasterAngler(txCtx, sub.CatchID, witness, image); err != nil {
				return fmt.Errorf("update catch: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "master angler submission reviewed",
		slog.Int64("submission_id", id),
	)
	return result, nil
}

// Certificate would render a printable award certificate.
// Generation is not implemented.
func (s *Service) Certificate(ctx context.Context, id int64) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("admin required: %w", domain.ErrUnauthorized)
	}
	return fmt.Errorf("certificate generation: %w", domain.ErrNotImplemented)
}
