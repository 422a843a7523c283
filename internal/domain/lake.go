package domain

// Lake is reference data describing a fishing lake.
// Coordinates are populated via geocoding when the lake is created.
type Lake struct {
	ID          int64
	Name        string
	State       string
	County      string
	NearestTown string
	Latitude    float64
	Longitude   float64
}

// LakeUpdate holds the partial fields of a lake patch.
type LakeUpdate struct {
	Name        *string
	State       *string
	County      *string
	NearestTown *string
	Latitude    *float64
	Longitude   *float64
}
