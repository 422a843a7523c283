// Package tacklebox implements the tackle box repository using PostgreSQL.
//
// A tackle box row is never removed. Removing a favorite soft-deletes the
// row and re-adding the same lure restores it, so the (user, lure) pair
// stays unique for the lifetime of the account.
package tacklebox

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "tackle_box"

var columns = []string{"id", "user_id", "lure_id", "created_at", "updated_at", "deleted_at"}

const returning = "RETURNING id, user_id, lure_id, created_at, updated_at, deleted_at"

// Repo provides tackle box persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new tackle box repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	LureID    int64      `db:"lure_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func toDomain(r entryRow) domain.TackleBoxEntry {
	return domain.TackleBoxEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		LureID:    r.LureID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
}

// GetIncludingDeleted returns the entry for a (user, lure) pair whether or
// not it is soft-deleted. The add flow needs to see deleted rows to decide
// between restore and insert.
func (r *Repo) GetIncludingDeleted(ctx context.Context, userID, lureID int64) (*domain.TackleBoxEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "lure_id": lureID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tackle box entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tackle box entry", lureID)
	}

	e := toDomain(row)
	return &e, nil
}

// Create inserts a new active entry.
func (r *Repo) Create(ctx context.Context, userID, lureID int64) (*domain.TackleBoxEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "lure_id").
		Values(userID, lureID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create tackle box entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tackle box entry", lureID)
	}

	created := toDomain(row)
	return &created, nil
}

// SoftDelete marks an active entry for a (user, lure) pair as deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, lureID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "lure_id": lureID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete tackle box entry: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "tackle box entry", lureID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tackle box entry for lure %d: %w", lureID, domain.ErrNotFound)
	}
	return nil
}

// Restore clears the deletion marker of a soft-deleted entry. Active rows
// are not touched, so restoring twice reports not found.
func (r *Repo) Restore(ctx context.Context, userID, lureID int64) (*domain.TackleBoxEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "lure_id": lureID}).
		Where(squirrel.NotEq{"deleted_at": nil}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build restore tackle box entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tackle box entry", lureID)
	}

	restored := toDomain(row)
	return &restored, nil
}

// ListActiveLures returns the lures in a user's tackle box, ordered by brand
// and name. Soft-deleted entries and soft-deleted lures are excluded.
func (r *Repo) ListActiveLures(ctx context.Context, userID int64) ([]domain.Lure, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select("l.id", "l.user_id", "l.brand", "l.name", "l.color", "l.size",
			"l.created_at", "l.updated_at", "l.deleted_at").
		From(table + " t").
		Join("lures l ON l.id = t.lure_id").
		Where(squirrel.Eq{"t.user_id": userID, "t.deleted_at": nil, "l.deleted_at": nil}).
		OrderBy("l.brand ASC", "l.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tackle box lures: %w", err)
	}

	var rows []struct {
		ID        int64      `db:"id"`
		UserID    *int64     `db:"user_id"`
		Brand     string     `db:"brand"`
		Name      string     `db:"name"`
		Color     string     `db:"color"`
		Size      string     `db:"size"`
		CreatedAt time.Time  `db:"created_at"`
		UpdatedAt time.Time  `db:"updated_at"`
		DeletedAt *time.Time `db:"deleted_at"`
	}
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list tackle box lures: %w", err)
	}

	lures := make([]domain.Lure, len(rows))
	for i, row := range rows {
		lures[i] = domain.Lure{
			ID:        row.ID,
			UserID:    row.UserID,
			Brand:     row.Brand,
			Name:      row.Name,
			Color:     row.Color,
			Size:      row.Size,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			DeletedAt: row.DeletedAt,
		}
	}
	return lures, nil
}
