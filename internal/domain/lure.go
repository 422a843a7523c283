package domain

import "time"

// StandardLureOwnerID is the sentinel owner of shared system lures.
// Lures owned by this user are visible to everyone alongside their own.
const StandardLureOwnerID int64 = 3

// Lure is a fishing lure owned by a user, or a shared standard lure.
type Lure struct {
	ID        int64
	UserID    *int64
	Brand     string
	Name      string
	Color     string
	Size      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// LureUpdate holds the partial fields of a lure patch.
type LureUpdate struct {
	Brand *string
	Name  *string
	Color *string
	Size  *string
}
