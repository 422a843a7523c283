package domain

import "time"

// Species is reference data for a fish species, including the minimum
// length qualifying a catch for a Master Angler award.
type Species struct {
	ID                 int64
	Name               string
	MasterAnglerLength float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}
