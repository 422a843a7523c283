// Package fishcatch implements the FishCatch repository using PostgreSQL.
//
// Listing and lookup return catches with their lake, species and lure
// joined, since the API never serves a catch without its reference data.
package fishcatch

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "fish_catches"

var detailColumns = []string{
	"c.id", "c.user_id", "c.lake_id", "c.species_id", "c.lure_id",
	"c.length", "c.weight", "c.date", "c.time", "c.caught_at",
	"c.barometric", "c.temperature", "c.weather_conditions",
	"c.wind_direction", "c.wind_speed",
	"c.fish_image", "c.witness", "c.master_angler",
	"c.created_at", "c.updated_at", "c.deleted_at",
	"l.name AS lake_name", "l.state AS lake_state", "l.county AS lake_county",
	"l.nearest_town AS lake_nearest_town",
	"l.latitude AS lake_latitude", "l.longitude AS lake_longitude",
	"s.name AS species_name", "s.master_angler_length AS species_master_angler_length",
	"lu.brand AS lure_brand", "lu.name AS lure_name",
	"lu.color AS lure_color", "lu.size AS lure_size",
}

const returning = `RETURNING id, user_id, lake_id, species_id, lure_id, length, weight,
	date, time, caught_at, barometric, temperature, weather_conditions,
	wind_direction, wind_speed, fish_image, witness, master_angler,
	created_at, updated_at, deleted_at`

// Repo provides fish catch persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new fish catch repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type catchRow struct {
	ID                int64      `db:"id"`
	UserID            int64      `db:"user_id"`
	LakeID            int64      `db:"lake_id"`
	SpeciesID         int64      `db:"species_id"`
	LureID            *int64     `db:"lure_id"`
	Length            *float64   `db:"length"`
	Weight            *float64   `db:"weight"`
	Date              *time.Time `db:"date"`
	Time              *string    `db:"time"`
	CaughtAt          int64      `db:"caught_at"`
	Barometric        *float64   `db:"barometric"`
	Temperature       *int       `db:"temperature"`
	WeatherConditions *string    `db:"weather_conditions"`
	WindDirection     *string    `db:"wind_direction"`
	WindSpeed         *int       `db:"wind_speed"`
	FishImage         string     `db:"fish_image"`
	Witness           string     `db:"witness"`
	MasterAngler      bool       `db:"master_angler"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

type detailRow struct {
	catchRow

	LakeName        string  `db:"lake_name"`
	LakeState       string  `db:"lake_state"`
	LakeCounty      string  `db:"lake_county"`
	LakeNearestTown string  `db:"lake_nearest_town"`
	LakeLatitude    float64 `db:"lake_latitude"`
	LakeLongitude   float64 `db:"lake_longitude"`

	SpeciesName               string  `db:"species_name"`
	SpeciesMasterAnglerLength float64 `db:"species_master_angler_length"`

	LureBrand *string `db:"lure_brand"`
	LureName  *string `db:"lure_name"`
	LureColor *string `db:"lure_color"`
	LureSize  *string `db:"lure_size"`
}

func toDomain(r catchRow) domain.FishCatch {
	return domain.FishCatch{
		ID:                r.ID,
		UserID:            r.UserID,
		LakeID:            r.LakeID,
		SpeciesID:         r.SpeciesID,
		LureID:            r.LureID,
		Length:            r.Length,
		Weight:            r.Weight,
		Date:              r.Date,
		Time:              r.Time,
		CaughtAt:          r.CaughtAt,
		Barometric:        r.Barometric,
		Temperature:       r.Temperature,
		WeatherConditions: r.WeatherConditions,
		WindDirection:     r.WindDirection,
		WindSpeed:         r.WindSpeed,
		FishImage:         r.FishImage,
		Witness:           r.Witness,
		MasterAngler:      r.MasterAngler,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		DeletedAt:         r.DeletedAt,
	}
}

func toDetails(r detailRow) domain.CatchDetails {
	d := domain.CatchDetails{
		FishCatch: toDomain(r.catchRow),
		Lake: &domain.Lake{
			ID:          r.LakeID,
			Name:        r.LakeName,
			State:       r.LakeState,
			County:      r.LakeCounty,
			NearestTown: r.LakeNearestTown,
			Latitude:    r.LakeLatitude,
			Longitude:   r.LakeLongitude,
		},
		Species: &domain.Species{
			ID:                 r.SpeciesID,
			Name:               r.SpeciesName,
			MasterAnglerLength: r.SpeciesMasterAnglerLength,
		},
	}
	if r.LureID != nil && r.LureBrand != nil {
		d.Lure = &domain.Lure{
			ID:    *r.LureID,
			Brand: *r.LureBrand,
			Name:  deref(r.LureName),
			Color: deref(r.LureColor),
			Size:  deref(r.LureSize),
		}
	}
	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *Repo) detailQuery() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(detailColumns...).
		From(table + " c").
		Join("lakes l ON l.id = c.lake_id").
		Join("species s ON s.id = c.species_id").
		LeftJoin("lures lu ON lu.id = c.lure_id").
		Where(squirrel.Eq{"c.deleted_at": nil})
}

// List returns active catches matching the filter, with reference data
// joined. Filter columns are expected to carry the "c." qualifier.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]domain.CatchDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.ApplyFilter(r.detailQuery(), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list catches: %w", err)
	}

	var rows []detailRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list catches: %w", err)
	}

	catches := make([]domain.CatchDetails, len(rows))
	for i, row := range rows {
		catches[i] = toDetails(row)
	}
	return catches, nil
}

// GetByID returns an active catch with its reference data joined.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.CatchDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := r.detailQuery().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get catch: %w", err)
	}

	var row detailRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "catch", id)
	}

	d := toDetails(row)
	return &d, nil
}

// Create inserts a new catch and returns the persisted record without joins.
func (r *Repo) Create(ctx context.Context, c *domain.FishCatch) (*domain.FishCatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "lake_id", "species_id", "lure_id", "length", "weight",
			"date", "time", "caught_at", "barometric", "temperature",
			"weather_conditions", "wind_direction", "wind_speed",
			"fish_image", "witness", "master_angler").
		Values(c.UserID, c.LakeID, c.SpeciesID, c.LureID, c.Length, c.Weight,
			c.Date, c.Time, c.CaughtAt, c.Barometric, c.Temperature,
			c.WeatherConditions, c.WindDirection, c.WindSpeed,
			c.FishImage, c.Witness, c.MasterAngler).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create catch: %w", err)
	}

	var row catchRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "catch", 0)
	}

	created := toDomain(row)
	return &created, nil
}

// Update patches the provided fields of an active catch.
func (r *Repo) Update(ctx context.Context, id int64, u domain.CatchUpdate) (*domain.FishCatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil})

	if u.LakeID != nil {
		b = b.Set("lake_id", *u.LakeID)
	}
	if u.SpeciesID != nil {
		b = b.Set("species_id", *u.SpeciesID)
	}
	if u.LureID != nil {
		b = b.Set("lure_id", *u.LureID)
	}
	if u.Length != nil {
		b = b.Set("length", *u.Length)
	}
	if u.Weight != nil {
		b = b.Set("weight", *u.Weight)
	}
	if u.Date != nil {
		b = b.Set("date", *u.Date)
		b = b.Set("caught_at", u.Date.Unix())
	}
	if u.Time != nil {
		b = b.Set("time", *u.Time)
	}
	if u.Barometric != nil {
		b = b.Set("barometric", *u.Barometric)
	}
	if u.Temperature != nil {
		b = b.Set("temperature", *u.Temperature)
	}
	if u.WeatherConditions != nil {
		b = b.Set("weather_conditions", *u.WeatherConditions)
	}
	if u.WindDirection != nil {
		b = b.Set("wind_direction", *u.WindDirection)
	}
	if u.WindSpeed != nil {
		b = b.Set("wind_speed", *u.WindSpeed)
	}
	if u.FishImage != nil {
		b = b.Set("fish_image", *u.FishImage)
	}
	if u.Witness != nil {
		b = b.Set("witness", *u.Witness)
	}
	if u.MasterAngler != nil {
		b = b.Set("master_angler", *u.MasterAngler)
	}

	sql, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update catch: %w", err)
	}

	var row catchRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "catch", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// SetMasterAngler flips the master angler flag and records the supporting
// witness and photo. Used by the submission review flow inside a transaction.
func (r *Repo) SetMasterAngler(ctx context.Context, id int64, witness, fishImage string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("master_angler", true).
		Set("witness", witness).
		Set("fish_image", fishImage).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set master angler: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "catch", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catch %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SoftDelete marks an active catch as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete catch: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "catch", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catch %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
