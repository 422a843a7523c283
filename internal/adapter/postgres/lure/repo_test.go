package lure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func lureColumns() []string {
	return []string{"id", "user_id", "brand", "name", "color", "size", "created_at", "updated_at", "deleted_at"}
}

func TestRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	owner := int64(7)
	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM lures WHERE`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(lureColumns()).
			AddRow(int64(42), &owner, "Rapala", "Shad Rap", "Firetiger", "7", now, now, nil))

	got, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), got.ID)
	require.Equal(t, "Rapala", got.Brand)
	require.NotNil(t, got.UserID)
	require.Equal(t, owner, *got.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT .+ FROM lures WHERE`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_SoftDelete(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectExec(`UPDATE lures SET`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SoftDelete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_SoftDelete_AlreadyDeleted(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectExec(`UPDATE lures SET`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SoftDelete(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Brands(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT DISTINCT brand FROM lures`).
		WillReturnRows(pgxmock.NewRows([]string{"brand"}).
			AddRow("Mepps").
			AddRow("Rapala"))

	brands, err := repo.Brands(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Mepps", "Rapala"}, brands)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_List_PropagatesQueryError(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT .+ FROM lures`).
		WillReturnError(boom)

	_, err := repo.List(context.Background(), domain.Filter{})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
