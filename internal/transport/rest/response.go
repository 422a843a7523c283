package rest

import (
	"time"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
)

const dateLayout = "2006-01-02"

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

type userStatsResponse struct {
	FishCatches         int `json:"fish_catches"`
	MasterAnglerCatches int `json:"master_angler_catches"`
	Lures               int `json:"lures"`
}

type lakeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	State       string  `json:"state"`
	County      string  `json:"county"`
	NearestTown string  `json:"nearest_town"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func toLakeResponse(l *domain.Lake) lakeResponse {
	return lakeResponse{
		ID:          l.ID,
		Name:        l.Name,
		State:       l.State,
		County:      l.County,
		NearestTown: l.NearestTown,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
	}
}

type speciesResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	MasterAnglerLength float64 `json:"master_angler_length"`
}

func toSpeciesResponse(s *domain.Species) speciesResponse {
	return speciesResponse{
		ID:                 s.ID,
		Name:               s.Name,
		MasterAnglerLength: s.MasterAnglerLength,
	}
}

type lureResponse struct {
	ID     int64  `json:"id"`
	UserID *int64 `json:"user_id"`
	Brand  string `json:"brand"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Size   string `json:"size"`
}

func toLureResponse(l *domain.Lure) lureResponse {
	return lureResponse{
		ID:     l.ID,
		UserID: l.UserID,
		Brand:  l.Brand,
		Name:   l.Name,
		Color:  l.Color,
		Size:   l.Size,
	}
}

func toLureResponses(lures []domain.Lure) []lureResponse {
	out := make([]lureResponse, len(lures))
	for i := range lures {
		out[i] = toLureResponse(&lures[i])
	}
	return out
}

type catchResponse struct {
	ID                int64    `json:"id"`
	UserID            int64    `json:"user_id"`
	LakeID            int64    `json:"lake_id"`
	SpeciesID         int64    `json:"species_id"`
	LureID            *int64   `json:"lure_id"`
	Length            *float64 `json:"length"`
	Weight            *float64 `json:"weight"`
	Date              *string  `json:"date"`
	Time              *string  `json:"time"`
	CaughtAt          int64    `json:"caught_at"`
	Barometric        *float64 `json:"barometric"`
	Temperature       *int     `json:"temperature"`
	WeatherConditions *string  `json:"weather_conditions"`
	WindDirection     *string  `json:"wind_direction"`
	WindSpeed         *int     `json:"wind_speed"`
	FishImage         string   `json:"fish_image"`
	Witness           string   `json:"witness"`
	MasterAngler      bool     `json:"master_angler"`

	Lake    *lakeResponse    `json:"lake,omitempty"`
	Species *speciesResponse `json:"species,omitempty"`
	Lure    *lureResponse    `json:"lure,omitempty"`
}

func toCatchResponse(c *domain.FishCatch) catchResponse {
	resp := catchResponse{
		ID:                c.ID,
		UserID:            c.UserID,
		LakeID:            c.LakeID,
		SpeciesID:         c.SpeciesID,
		LureID:            c.LureID,
		Length:            c.Length,
		Weight:            c.Weight,
		Time:              c.Time,
		CaughtAt:          c.CaughtAt,
		Barometric:        c.Barometric,
		Temperature:       c.Temperature,
		WeatherConditions: c.WeatherConditions,
		WindDirection:     c.WindDirection,
		WindSpeed:         c.WindSpeed,
		FishImage:         c.FishImage,
		Witness:           c.Witness,
		MasterAngler:      c.MasterAngler,
	}
	if c.Date != nil {
		date := c.Date.Format(dateLayout)
		resp.Date = &date
	}
	return resp
}

func toCatchDetailsResponse(d *domain.CatchDetails) catchResponse {
	resp := toCatchResponse(&d.FishCatch)
	if d.Lake != nil {
		lake := toLakeResponse(d.Lake)
		resp.Lake = &lake
	}
	if d.Species != nil {
		species := toSpeciesResponse(d.Species)
		resp.Species = &species
	}
	if d.Lure != nil {
		lure := toLureResponse(d.Lure)
		resp.Lure = &lure
	}
	return resp
}

type submissionResponse struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	CatchID   int64          `json:"catch_id"`
	Reviewed  bool           `json:"reviewed"`
	CreatedAt string         `json:"created_at,omitempty"`
	Catch     *catchResponse `json:"catch,omitempty"`
}

func toSubmissionResponse(s *domain.MasterAnglerSubmission) submissionResponse {
	resp := submissionResponse{
		ID:       s.ID,
		UserID:   s.UserID,
		CatchID:  s.CatchID,
		Reviewed: s.Reviewed,
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func toSubmissionDetailsResponse(d *domain.SubmissionDetails) submissionResponse {
	resp := toSubmissionResponse(&d.MasterAnglerSubmission)
	if d.Catch != nil {
		c := toCatchDetailsResponse(d.Catch)
		resp.Catch = &c
	}
	return resp
}

type tackleBoxEntryResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	LureID int64 `json:"lure_id"`
}

func toTackleBoxEntryResponse(e *domain.TackleBoxEntry) tackleBoxEntryResponse {
	return tackleBoxEntryResponse{ID: e.ID, UserID: e.UserID, LureID: e.LureID}
}

type weatherResponse struct {
	Timestamp   int64   `json:"dt"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Humidity    int     `json:"humidity"`
	Clouds      int     `json:"clouds"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Conditions  string  `json:"conditions"`
	Description string  `json:"description"`
}

func toWeatherResponse(o *provider.WeatherObservation) weatherResponse {
	return weatherResponse{
		Timestamp:   o.Timestamp,
		Temperature: o.Temperature,
		Pressure:    o.Pressure,
		Humidity:    o.Humidity,
		Clouds:      o.Clouds,
		WindSpeed:   o.WindSpeed,
		WindDeg:     o.WindDeg,
		Conditions:  o.Conditions,
		Description: o.Description,
	}
}
