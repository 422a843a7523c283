// Package lake implements the Lake repository using PostgreSQL.
package lake

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "lakes"

var columns = []string{"id", "name", "state", "county", "nearest_town", "latitude", "longitude"}

const returning = "RETURNING id, name, state, county, nearest_town, latitude, longitude"

// Repo provides lake persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new lake repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type lakeRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	State       string  `db:"state"`
	County      string  `db:"county"`
	NearestTown string  `db:"nearest_town"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
}

func toDomain(r lakeRow) domain.Lake {
	return domain.Lake{
		ID:          r.ID,
		Name:        r.Name,
		State:       r.State,
		County:      r.County,
		NearestTown: r.NearestTown,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}

// List returns lakes matching the filter, ordered by name unless the filter
// requests otherwise.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Lake, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.ApplyFilter(postgres.Builder.Select(columns...).From(table), f)
	if f.Sort.Column == "" {
		b = b.OrderBy("name ASC")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lakes: %w", err)
	}

	var rows []lakeRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list lakes: %w", err)
	}

	lakes := make([]domain.Lake, len(rows))
	for i, row := range rows {
		lakes[i] = toDomain(row)
	}
	return lakes, nil
}

// GetByID returns a lake by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Lake, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get lake: %w", err)
	}

	var row lakeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lake", id)
	}

	l := toDomain(row)
	return &l, nil
}

// Create inserts a new lake and returns the persisted record.
func (r *Repo) Create(ctx context.Context, l *domain.Lake) (*domain.Lake, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("name", "state", "county", "nearest_town", "latitude", "longitude").
		Values(l.Name, l.State, l.County, l.NearestTown, l.Latitude, l.Longitude).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create lake: %w", err)
	}

	var row lakeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lake", 0)
	}

	created := toDomain(row)
	return &created, nil
}

// Update patches the provided fields of a lake.
func (r *Repo) Update(ctx context.Context, id int64, u domain.LakeUpdate) (*domain.Lake, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Update(table).
		Where(squirrel.Eq{"id": id})

	changed := false
	set := func(col string, v any) {
		b = b.Set(col, v)
		changed = true
	}
	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.State != nil {
		set("state", *u.State)
	}
	if u.County != nil {
		set("county", *u.County)
	}
	if u.NearestTown != nil {
		set("nearest_town", *u.NearestTown)
	}
	if u.Latitude != nil {
		set("latitude", *u.Latitude)
	}
	if u.Longitude != nil {
		set("longitude", *u.Longitude)
	}
	// Lakes have no updated_at, so an empty patch would render an UPDATE
	// with no SET clause.
	if !changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update lake: %w", err)
	}

	var row lakeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lake", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// Delete removes a lake permanently. Lakes are shared reference data and do
// not carry a deletion marker.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lake: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "lake", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lake %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
