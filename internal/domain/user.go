package domain

import "time"

// User represents a registered angler.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// UserStats aggregates counts of a user's owned records.
type UserStats struct {
	FishCatches         int
	MasterAnglerCatches int
	Lures               int
}

// UserUpdate holds the partial fields of a profile patch.
// Nil means "leave unchanged".
type UserUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}
