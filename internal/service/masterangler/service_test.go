package masterangler

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type submissionRepoMock struct {
	ListFunc               func(ctx context.Context, f domain.Filter) ([]domain.SubmissionDetails, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.SubmissionDetails, error)
	CreateFunc             func(ctx context.Context, userID, catchID int64) (*domain.MasterAnglerSubmission, error)
	SetReviewedFunc        func(ctx context.Context, id int64, reviewed bool) (*domain.MasterAnglerSubmission, error)
	ListApprovedByUserFunc func(ctx context.Context, userID int64) ([]domain.SubmissionDetails, error)
}

func (m *submissionRepoMock) List(ctx context.Context, f domain.Filter) ([]domain.SubmissionDetails, error) {
	return m.ListFunc(ctx, f)
}
func (m *submissionRepoMock) GetByID(ctx context.Context, id int64) (*domain.SubmissionDetails, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *submissionRepoMock) Create(ctx context.Context, userID, catchID int64) (*domain.MasterAnglerSubmission, error) {
	return m.CreateFunc(ctx, userID, catchID)
}
func (m *submissionRepoMock) SetReviewed(ctx context.Context, id int64, reviewed bool) (*domain.MasterAnglerSubmission, error) {
	return m.SetReviewedFunc(ctx, id, reviewed)
}
func (m *submissionRepoMock) ListApprovedByUser(ctx context.Context, userID int64) ([]domain.SubmissionDetails, error) {
	return m.ListApprovedByUserFunc(ctx, userID)
}

type catchRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.CatchDetails, error)
	SetMasterAnglerFunc func(ctx context.Context, id int64, witness, fishImage string) error
}

func (m *catchRepoMock) GetByID(ctx context.Context, id int64) (*domain.CatchDetails, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *catchRepoMock) SetMasterAngler(ctx context.Context, id int64, witness, fishImage string) error {
	return m.SetMasterAnglerFunc(ctx, id, witness, fishImage)
}

type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(subs *submissionRepoMock, catches *catchRepoMock) *Service {
	if catches == nil {
		catches = &catchRepoMock{}
	}
	return NewService(slog.New(slog.DiscardHandler), subs, catches, txManagerMock{})
}

func asAdmin() context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: 1, IsAdmin: true})
}

func asUser(id int64) context.Context {
	return ctxutil.WithPrincipal(context.Background(), ctxutil.Principal{UserID: id})
}

func TestSubmit_CatchMustExist(t *testing.T) {
	catches := &catchRepoMock{
		GetByIDFunc: func(_ context.Context, _ int64) (*domain.CatchDetails, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newService(&submissionRepoMock{}, catches)

	_, err := svc.Submit(asAdmin(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_UsesCatchOwner(t *testing.T) {
	catches := &catchRepoMock{
		GetByIDFunc: func(_ context.Context, id int64) (*domain.CatchDetails, error) {
			return &domain.CatchDetails{FishCatch: domain.FishCatch{ID: id, UserID: 7}}, nil
		},
	}
	subs := &submissionRepoMock{
		CreateFunc: func(_ context.Context, userID, catchID int64) (*domain.MasterAnglerSubmission, error) {
			require.Equal(t, int64(7), userID)
			return &domain.MasterAnglerSubmission{ID: 1, UserID: userID, CatchID: catchID}, nil
		},
	}
	svc := newService(subs, catches)

	sub, err := svc.Submit(asAdmin(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), sub.UserID)
}

func TestSubmit_AdminOnly(t *testing.T) {
	svc := newService(&submissionRepoMock{}, nil)

	_, err := svc.Submit(asUser(7), 5)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestReview_UpdatesFlagAndCatchTogether(t *testing.T) {
	reviewed := true
	witness := "Jim Nelson"
	photo := "/uploads/walleye.jpg"

	var catchUpdated bool
	subs := &submissionRepoMock{
		GetByIDFunc: func(_ context.Context, id int64) (*domain.SubmissionDetails, error) {
			return &domain.SubmissionDetails{
				MasterAnglerSubmission: domain.MasterAnglerSubmission{ID: id, CatchID: 5},
				Catch: &domain.CatchDetails{FishCatch: domain.FishCatch{
					ID: 5, Witness: domain.DefaultWitness, FishImage: domain.DefaultFishImage,
				}},
			}, nil
		},
		SetReviewedFunc: func(_ context.Context, id int64, r bool) (*domain.MasterAnglerSubmission, error) {
			require.True(t, r)
			return &domain.MasterAnglerSubmission{ID: id, CatchID: 5, Reviewed: true}, nil
		},
	}
	catches := &catchRepoMock{
		SetMasterAnglerFunc: func(_ context.Context, id int64, w, img string) error {
			require.Equal(t, int64(5), id)
			require.Equal(t, witness, w)
			require.Equal(t, photo, img)
			catchUpdated = true
			return nil
		},
	}
	svc := newService(subs, catches)

	sub, err := svc.Review(asAdmin(), 1, ReviewInput{Reviewed: &reviewed, Witness: &witness, PhotoURL: &photo})
	require.NoError(t, err)
	require.True(t, sub.Reviewed)
	require.True(t, catchUpdated)
}

func TestReview_EmptyPatchRejected(t *testing.T) {
	svc := newService(&submissionRepoMock{}, nil)

	_, err := svc.Review(asAdmin(), 1, ReviewInput{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestListApproved_EmptyIsNotFound(t *testing.T) {
	subs := &submissionRepoMock{
		ListApprovedByUserFunc: func(_ context.Context, _ int64) ([]domain.SubmissionDetails, error) {
			return nil, nil
		},
	}
	svc := newService(subs, nil)

	_, err := svc.ListApproved(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCertificate_NotImplemented(t *testing.T) {
	svc := newService(&submissionRepoMock{}, nil)

	err := svc.Certificate(asAdmin(), 1)
	require.ErrorIs(t, err, domain.ErrNotImplemented)
}
