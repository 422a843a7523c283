// Package openweather fetches historical weather and geocoding data from
// the OpenWeather API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/msaemrow/anglers-index-api/internal/config"
	"github.com/msaemrow/anglers-index-api/internal/provider"
)

// Client calls the OpenWeather time machine and direct geocoding endpoints.
type Client struct {
	apiKey         string
	timeMachineURL string
	geocodeURL     string
	httpClient     *http.Client
	log            *slog.Logger
}

// NewClient creates a Client from the weather configuration.
func NewClient(cfg config.WeatherConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:         cfg.APIKey,
		timeMachineURL: cfg.TimeMachineURL,
		geocodeURL:     cfg.GeocodeURL,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		log:            logger.With("adapter", "openweather"),
	}
}

// Observation fetches the weather at the given coordinates and unix
// timestamp. A failed lookup is reported as an error; there is no retry,
// the caller treats weather as best-effort.
func (c *Client) Observation(ctx context.Context, lat, lon float64, ts int64) (*provider.WeatherObservation, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("dt", strconv.FormatInt(ts, 10))
	q.Set("units", "imperial")
	q.Set("appid", c.apiKey)

	c.log.DebugContext(ctx, "time machine request",
		slog.Float64("lat", lat), slog.Float64("lon", lon), slog.Int64("dt", ts))

	var payload timeMachineResponse
	if err := c.getJSON(ctx, c.timeMachineURL+"?"+q.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("openweather: time machine: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("openweather: time machine returned no data")
	}

	d := payload.Data[0]
	obs := &provider.WeatherObservation{
		Timestamp:   d.Dt,
		Temperature: d.Temp,
		Pressure:    d.Pressure,
		Humidity:    d.Humidity,
		Clouds:      d.Clouds,
		WindSpeed:   d.WindSpeed,
		WindDeg:     d.WindDeg,
	}
	if len(d.Weather) > 0 {
		obs.Conditions = d.Weather[0].Main
		obs.Description = d.Weather[0].Description
	}
	return obs, nil
}

// Geocode resolves a US town and state to coordinates.
// Returns nil, nil when the place is unknown.
func (c *Client) Geocode(ctx context.Context, town, state string) (*provider.GeoPoint, error) {
	q := url.Values{}
	q.Set("q", town+","+state+",US")
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	c.log.DebugContext(ctx, "geocode request",
		slog.String("town", town), slog.String("state", state))

	var places []geocodeResult
	if err := c.getJSON(ctx, c.geocodeURL+"?"+q.Encode(), &places); err != nil {
		return nil, fmt.Errorf("openweather: geocode: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	p := places[0]
	return &provider.GeoPoint{
		Name:      p.Name,
		Latitude:  p.Lat,
		Longitude: p.Lon,
		Country:   p.Country,
		State:     p.State,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

type timeMachineResponse struct {
	Data []struct {
		Dt        int64   `json:"dt"`
		Temp      float64 `json:"temp"`
		Pressure  float64 `json:"pressure"`
		Humidity  int     `json:"humidity"`
		Clouds    int     `json:"clouds"`
		WindSpeed float64 `json:"wind_speed"`
		WindDeg   int     `json:"wind_deg"`
		Weather   []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"data"`
}

type geocodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}
