// Package species implements the Species repository using PostgreSQL.
package species

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "species"

var columns = []string{"id", "name", "master_angler_length", "created_at", "updated_at", "deleted_at"}

const returning = "RETURNING id, name, master_angler_length, created_at, updated_at, deleted_at"

// Repo provides species persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new species repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type speciesRow struct {
	ID                 int64      `db:"id"`
	Name               string     `db:"name"`
	MasterAnglerLength float64    `db:"master_angler_length"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"`
}

func toDomain(r speciesRow) domain.Species {
	return domain.Species{
		ID:                 r.ID,
		Name:               r.Name,
		MasterAnglerLength: r.MasterAnglerLength,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		DeletedAt:          r.DeletedAt,
	}
}

// List returns all active species ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Species, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list species: %w", err)
	}

	var rows []speciesRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}

	species := make([]domain.Species, len(rows))
	for i, row := range rows {
		species[i] = toDomain(row)
	}
	return species, nil
}

// GetByID returns an active species by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Species, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get species: %w", err)
	}

	var row speciesRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "species", id)
	}

	s := toDomain(row)
	return &s, nil
}

// Create inserts a new species and returns the persisted record.
func (r *Repo) Create(ctx context.Context, s *domain.Species) (*domain.Species, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("name", "master_angler_length").
		Values(s.Name, s.MasterAnglerLength).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create species: %w", err)
	}

	var row speciesRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "species", 0)
	}

	created := toDomain(row)
	return &created, nil
}

// UpdateLength sets the Master Angler qualifying length of an active species.
func (r *Repo) UpdateLength(ctx context.Context, id int64, length float64) (*domain.Species, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("master_angler_length", length).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update species: %w", err)
	}

	var row speciesRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "species", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// SoftDelete marks an active species as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete species: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "species", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("species %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
