package domain

import "time"

// DefaultFishImage is the image path assigned when a catch is recorded
// without a photo.
const DefaultFishImage = "/static/images/stock-fish.jpg"

// DefaultWitness is stored when no witness was named.
const DefaultWitness = "NA"

// FishCatch is a single logged catch with its environmental metadata.
type FishCatch struct {
	ID                int64
	UserID            int64
	LakeID            int64
	SpeciesID         int64
	LureID            *int64
	Length            *float64
	Weight            *float64
	Date              *time.Time
	Time              *string
	CaughtAt          int64
	Barometric        *float64
	Temperature       *int
	WeatherConditions *string
	WindDirection     *string
	WindSpeed         *int
	FishImage         string
	Witness           string
	MasterAngler      bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// CatchDetails is a catch with its referenced lake, species and lure embedded.
type CatchDetails struct {
	FishCatch
	Lake    *Lake
	Species *Species
	Lure    *Lure
}

// CatchUpdate holds the partial fields of a catch patch.
type CatchUpdate struct {
	LakeID            *int64
	SpeciesID         *int64
	LureID            *int64
	Length            *float64
	Weight            *float64
	Date              *time.Time
	Time              *string
	Barometric        *float64
	Temperature       *int
	WeatherConditions *string
	WindDirection     *string
	WindSpeed         *int
	FishImage         *string
	Witness           *string
	MasterAngler      *bool
}
