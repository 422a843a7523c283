package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/msaemrow/anglers-index-api/internal/domain"
	"github.com/msaemrow/anglers-index-api/internal/provider"
	"github.com/msaemrow/anglers-index-api/internal/service/catch"
)

// catchService defines the minimal interface needed by CatchHandler.
type catchService interface {
	List(ctx context.Context, input catch.ListInput) ([]domain.CatchDetails, error)
	Get(ctx context.Context, id int64) (*domain.CatchDetails, error)
	Create(ctx context.Context, input catch.CreateInput) (*domain.FishCatch, error)
	Update(ctx context.Context, id int64, input catch.UpdateInput) (*domain.FishCatch, error)
	SetMasterAngler(ctx context.Context, id int64, flag bool) (*domain.FishCatch, error)
	Delete(ctx context.Context, id int64) error
	Weather(ctx context.Context, input catch.WeatherInput) (*provider.WeatherObservation, error)
}

// CatchHandler serves fish catch endpoints.
type CatchHandler struct {
	svc catchService
	log *slog.Logger
}

// NewCatchHandler creates a CatchHandler.
func NewCatchHandler(svc catchService, logger *slog.Logger) *CatchHandler {
	return &CatchHandler{svc: svc, log: logger.With("handler", "catch")}
}

type createCatchRequest struct {
	LakeID            int64    `json:"lake_id"`
	SpeciesID         int64    `json:"species_id"`
	LureID            *int64   `json:"lure_id"`
	Length            *float64 `json:"length"`
	Weight            *float64 `json:"weight"`
	Date              *string  `json:"date"`
	Time              *string  `json:"time"`
	Barometric        *float64 `json:"barometric"`
	Temperature       *int     `json:"temperature"`
	WeatherConditions *string  `json:"weather_conditions"`
	WindDirection     *string  `json:"wind_direction"`
	WindSpeed         *int     `json:"wind_speed"`
	FishImage         string   `json:"fish_image"`
	Witness           string   `json:"witness"`
}

type updateCatchRequest struct {
	LakeID            *int64   `json:"lake_id"`
	SpeciesID         *int64   `json:"species_id"`
	LureID            *int64   `json:"lure_id"`
	Length            *float64 `json:"length"`
	Weight            *float64 `json:"weight"`
	Date              *string  `json:"date"`
	Time              *string  `json:"time"`
	Barometric        *float64 `json:"barometric"`
	Temperature       *int     `json:"temperature"`
	WeatherConditions *string  `json:"weather_conditions"`
	WindDirection     *string  `json:"wind_direction"`
	WindSpeed         *int     `json:"wind_speed"`
	FishImage         *string  `json:"fish_image"`
	Witness           *string  `json:"witness"`
}

type masterAnglerRequest struct {
	MasterAngler bool `json:"master_angler"`
}

type weatherRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"long"`
	Timestamp *int64   `json:"dt"`
}

// parseDate converts an optional "YYYY-MM-DD" string into a time value.
func parseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

// List handles GET /fishcatch. A catch_id query parameter short-circuits
// to a single catch lookup.
func (h *CatchHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("catch_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		c, err := h.svc.Get(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toCatchDetailsResponse(c))
		return
	}

	catches, err := h.svc.List(r.Context(), catch.ListInput{
		UserID:       q.Get("user_id"),
		SpeciesID:    q.Get("species_id"),
		LakeID:       q.Get("lake_id"),
		MasterAngler: q.Get("master_angler"),
		MinLength:    q.Get("minLength"),
		MinWeight:    q.Get("minWeight"),
		LureIDs:      q.Get("lure_ids"),
		OrderBy:      q.Get("orderBy"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]catchResponse, len(catches))
	for i := range catches {
		out[i] = toCatchDetailsResponse(&catches[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /fishcatch/{id}.
func (h *CatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatchDetailsResponse(c))
}

// Create handles POST /fishcatch.
func (h *CatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCatchRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), catch.CreateInput{
		LakeID:            req.LakeID,
		SpeciesID:         req.SpeciesID,
		LureID:            req.LureID,
		Length:            req.Length,
		Weight:            req.Weight,
		Date:              date,
		Time:              req.Time,
		Barometric:        req.Barometric,
		Temperature:       req.Temperature,
		WeatherConditions: req.WeatherConditions,
		WindDirection:     req.WindDirection,
		WindSpeed:         req.WindSpeed,
		FishImage:         req.FishImage,
		Witness:           req.Witness,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCatchResponse(c))
}

// Update handles PATCH /fishcatch/{id}.
func (h *CatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateCatchRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, catch.UpdateInput{
		LakeID:            req.LakeID,
		SpeciesID:         req.SpeciesID,
		LureID:            req.LureID,
		Length:            req.Length,
		Weight:            req.Weight,
		Date:              date,
		Time:              req.Time,
		Barometric:        req.Barometric,
		Temperature:       req.Temperature,
		WeatherConditions: req.WeatherConditions,
		WindDirection:     req.WindDirection,
		WindSpeed:         req.WindSpeed,
		FishImage:         req.FishImage,
		Witness:           req.Witness,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatchResponse(c))
}

// SetMasterAngler handles PUT /fishcatch/{id}/master-angler.
func (h *CatchHandler) SetMasterAngler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req masterAnglerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.SetMasterAngler(r.Context(), id, req.MasterAngler)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatchResponse(c))
}

// Delete handles DELETE /fishcatch/{id}.
func (h *CatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Weather handles POST /fishcatch/weather.
func (h *CatchHandler) Weather(w http.ResponseWriter, r *http.Request) {
	var req weatherRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	obs, err := h.svc.Weather(r.Context(), catch.WeatherInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeatherResponse(obs))
}
