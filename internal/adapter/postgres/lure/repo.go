// Package lure implements the Lure repository using PostgreSQL.
package lure

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "lures"

var columns = []string{"id", "user_id", "brand", "name", "color", "size", "created_at", "updated_at", "deleted_at"}

// Repo provides lure persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new lure repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type lureRow struct {
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

func toDomain(r lureRow) domain.Lure {
	return domain.Lure{
		ID:        r.ID,
		UserID:    r.UserID,
		Brand:     r.Brand,
		Name:      r.Name,
		Color:     r.Color,
		Size:      r.Size,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
}

// List returns active lures matching the filter. With no sort requested the
// listing is ordered by brand, name and color, matching the catalog view.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Lure, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"deleted_at": nil})

	b = postgres.ApplyFilter(b, f)
	if f.Sort.Column == "" {
		b = b.OrderBy("brand ASC", "name ASC", "color ASC")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lures: %w", err)
	}

	var rows []lureRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list lures: %w", err)
	}

	lures := make([]domain.Lure, len(rows))
	for i, row := range rows {
		lures[i] = toDomain(row)
	}
	return lures, nil
}

// ListForUser returns the user's own active lures plus the shared standard
// lures, ordered by brand and name.
func (r *Repo) ListForUser(ctx context.Context, userID int64) ([]domain.Lure, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(squirrel.Or{
			squirrel.Eq{"user_id": userID},
			squirrel.Eq{"user_id": domain.StandardLureOwnerID},
		}).
		OrderBy("brand ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user lures: %w", err)
	}

	var rows []lureRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list user lures: %w", err)
	}

	lures := make([]domain.Lure, len(rows))
	for i, row := range rows {
		lures[i] = toDomain(row)
	}
	return lures, nil
}

// Brands returns the distinct brand names of active lures, sorted.
func (r *Repo) Brands(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select("DISTINCT brand").
		From(table).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("brand ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list brands: %w", err)
	}

	var brands []string
	if err := pgxscan.Select(ctx, q, &brands, sql, args...); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

// GetByID returns an active lure by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Lure, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get lure: %w", err)
	}

	var row lureRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lure", id)
	}

	l := toDomain(row)
	return &l, nil
}

// Create inserts a new lure and returns the persisted record.
func (r *Repo) Create(ctx context.Context, l *domain.Lure) (*domain.Lure, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "brand", "name", "color", "size").
		Values(l.UserID, l.Brand, l.Name, l.Color, l.Size).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create lure: %w", err)
	}

	var row lureRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lure", 0)
	}

	created := toDomain(row)
	return &created, nil
}

// Update patches the provided fields of an active lure.
func (r *Repo) Update(ctx context.Context, id int64, u domain.LureUpdate) (*domain.Lure, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil})

	if u.Brand != nil {
		b = b.Set("brand", *u.Brand)
	}
	if u.Name != nil {
		b = b.Set("name", *u.Name)
	}
	if u.Color != nil {
		b = b.Set("color", *u.Color)
	}
	if u.Size != nil {
		b = b.Set("size", *u.Size)
	}

	sql, args, err := b.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update lure: %w", err)
	}

	var row lureRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lure", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// SoftDelete marks an active lure as deleted.
// Returns domain.ErrNotFound if no active lure matched.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lure: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "lure", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lure %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByUser returns the number of active lures owned by a user.
func (r *Repo) CountByUser(ctx context.Context, userID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count lures: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, fmt.Errorf("count lures: %w", err)
	}
	return count, nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
