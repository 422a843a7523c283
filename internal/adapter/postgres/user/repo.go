// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	"github.com/msaemrow/anglers-index-api/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "email", "first_name", "last_name", "password_hash", "is_admin", "created_at", "updated_at", "deleted_at"}

const returning = "RETURNING id, username, email, first_name, last_name, password_hash, is_admin, created_at, updated_at, deleted_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	PasswordHash string     `db:"password_hash"`
	IsAdmin      bool       `db:"is_admin"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func toDomain(r userRow) domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		DeletedAt:    r.DeletedAt,
	}
}

// Create inserts a new user and returns the persisted record.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("username", "email", "first_name", "last_name", "password_hash", "is_admin").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.IsAdmin).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	created := toDomain(row)
	return &created, nil
}

// GetByID returns an active user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns an active user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, 0)
}

// GetByEmail returns an active user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email}, 0)
}

func (r *Repo) getBy(ctx context.Context, cond squirrel.Eq, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cond["deleted_at"] = nil
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomain(row)
	return &u, nil
}

// List returns active users matching the filter, ordered by username unless
// the filter requests otherwise.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"deleted_at": nil})

	b = postgres.ApplyFilter(b, f)
	if f.Sort.Column == "" {
		b = b.OrderBy("username ASC")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = toDomain(row)
	}
	return users, nil
}

// Update patches the provided profile fields of an active user.
func (r *Repo) Update(ctx context.Context, id int64, u domain.UserUpdate) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil})

	if u.Username != nil {
		b = b.Set("username", *u.Username)
	}
	if u.Email != nil {
		b = b.Set("email", *u.Email)
	}
	if u.FirstName != nil {
		b = b.Set("first_name", *u.FirstName)
	}
	if u.LastName != nil {
		b = b.Set("last_name", *u.LastName)
	}

	sql, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// SoftDelete marks an active user as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

const statsQuery = `SELECT
	(SELECT COUNT(*) FROM fish_catches WHERE user_id = $1 AND deleted_at IS NULL) AS fish_catches,
	(SELECT COUNT(*) FROM fish_catches WHERE user_id = $1 AND master_angler AND deleted_at IS NULL) AS master_angler_catches,
	(SELECT COUNT(*) FROM lures WHERE user_id = $1 AND deleted_at IS NULL) AS lures`

// Stats returns aggregate counts of the user's active records.
func (r *Repo) Stats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row struct {
		FishCatches         int `db:"fish_catches"`
		MasterAnglerCatches int `db:"master_angler_catches"`
		Lures               int `db:"lures"`
	}
	if err := pgxscan.Get(ctx, q, &row, statsQuery, userID); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	return &domain.UserStats{
		FishCatches:         row.FishCatches,
		MasterAnglerCatches: row.MasterAnglerCatches,
		Lures:               row.Lures,
	}, nil
}
