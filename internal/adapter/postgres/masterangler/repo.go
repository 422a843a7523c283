// Package masterangler implements the Master Angler submission repository
// using PostgreSQL.
package masterangler

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "master_angler_catches"

const returning = "RETURNING id, user_id, catch_id, reviewed, created_at, updated_at, deleted_at"

var detailColumns = []string{
	"m.id", "m.user_id", "m.catch_id", "m.reviewed",
	"m.created_at", "m.updated_at", "m.deleted_at",
	"c.lake_id", "c.species_id", "c.lure_id",
	"c.length", "c.weight", "c.date", "c.time", "c.caught_at",
	"c.fish_image", "c.witness", "c.master_angler",
	"l.name AS lake_name", "l.state AS lake_state", "l.county AS lake_county",
	"l.nearest_town AS lake_nearest_town",
	"l.latitude AS lake_latitude", "l.longitude AS lake_longitude",
	"s.name AS species_name", "s.master_angler_length AS species_master_angler_length",
	"lu.brand AS lure_brand", "lu.name AS lure_name",
	"lu.color AS lure_color", "lu.size AS lure_size",
}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new submission repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type submissionRow struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	CatchID   int64      `db:"catch_id"`
	Reviewed  bool       `db:"reviewed"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type detailRow struct {
	submissionRow

	LakeID       int64      `db:"lake_id"`
	SpeciesID    int64      `db:"species_id"`
	LureID       *int64     `db:"lure_id"`
	Length       *float64   `db:"length"`
	Weight       *float64   `db:"weight"`
	Date         *time.Time `db:"date"`
	Time         *string    `db:"time"`
	CaughtAt     int64      `db:"caught_at"`
	FishImage    string     `db:"fish_image"`
	Witness      string     `db:"witness"`
	MasterAngler bool       `db:"master_angler"`

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

func toDomain(r submissionRow) domain.MasterAnglerSubmission {
	return domain.MasterAnglerSubmission{
		ID:        r.ID,
		UserID:    r.UserID,
		CatchID:   r.CatchID,
		Reviewed:  r.Reviewed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
}

func toDetails(r detailRow) domain.SubmissionDetails {
	catch := domain.CatchDetails{
		FishCatch: domain.FishCatch{
			ID:           r.CatchID,
			UserID:       r.UserID,
			LakeID:       r.LakeID,
			SpeciesID:    r.SpeciesID,
			LureID:       r.LureID,
			Length:       r.Length,
			Weight:       r.Weight,
			Date:         r.Date,
			Time:         r.Time,
			CaughtAt:     r.CaughtAt,
			FishImage:    r.FishImage,
			Witness:      r.Witness,
			MasterAngler: r.MasterAngler,
		},
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
		catch.Lure = &domain.Lure{
			ID:    *r.LureID,
			Brand: *r.LureBrand,
			Name:  deref(r.LureName),
			Color: deref(r.LureColor),
			Size:  deref(r.LureSize),
		}
	}

	return domain.SubmissionDetails{
		MasterAnglerSubmission: toDomain(r.submissionRow),
		Catch:                  &catch,
	}
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
		From(table + " m").
		Join("fish_catches c ON c.id = m.catch_id").
		Join("lakes l ON l.id = c.lake_id").
		Join("species s ON s.id = c.species_id").
		LeftJoin("lures lu ON lu.id = c.lure_id").
		Where(squirrel.Eq{"m.deleted_at": nil})
}

// List returns active submissions matching the filter, newest first unless
// the filter requests otherwise. Filter columns carry the "m." or "c."
// qualifier depending on which table they address.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]domain.SubmissionDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.ApplyFilter(r.detailQuery(), f)
	if f.Sort.Column == "" {
		b = b.OrderBy("m.created_at DESC")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list submissions: %w", err)
	}

	var rows []detailRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	subs := make([]domain.SubmissionDetails, len(rows))
	for i, row := range rows {
		subs[i] = toDetails(row)
	}
	return subs, nil
}

// GetByID returns an active submission with its catch joined.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.SubmissionDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := r.detailQuery().
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get submission: %w", err)
	}

	var row detailRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}

	d := toDetails(row)
	return &d, nil
}

// Create inserts a new unreviewed submission.
func (r *Repo) Create(ctx context.Context, userID, catchID int64) (*domain.MasterAnglerSubmission, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "catch_id").
		Values(userID, catchID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create submission: %w", err)
	}

	var row submissionRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "submission", catchID)
	}

	created := toDomain(row)
	return &created, nil
}

// SetReviewed updates the reviewed flag of an active submission.
func (r *Repo) SetReviewed(ctx context.Context, id int64, reviewed bool) (*domain.MasterAnglerSubmission, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("reviewed", reviewed).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review submission: %w", err)
	}

	var row submissionRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// ListApprovedByUser returns a user's reviewed submissions with their
// catches joined, newest first.
func (r *Repo) ListApprovedByUser(ctx context.Context, userID int64) ([]domain.SubmissionDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := r.detailQuery().
		Where(squirrel.Eq{"m.user_id": userID, "m.reviewed": true}).
		OrderBy("m.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list approved submissions: %w", err)
	}

	var rows []detailRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list approved submissions: %w", err)
	}

	subs := make([]domain.SubmissionDetails, len(rows))
	for i, row := range rows {
		subs[i] = toDetails(row)
	}
	return subs, nil
}
