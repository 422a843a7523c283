package domain

import "time"

// TackleBoxEntry marks a lure as favorited by a user. The favorite set is
// exactly the rows whose DeletedAt is nil; removal soft-deletes and restore
// clears the deletion timestamp again.
type TackleBoxEntry struct {
	ID        int64
	UserID    int64
	LureID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the entry is currently soft-deleted.
func (e *TackleBoxEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}
