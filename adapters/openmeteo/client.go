package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
)

// dailyVariables are requested in this order; the response echoes them back
// as parallel arrays keyed by variable name.
var dailyVariables = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"temperature_2m_mean",
	"precipitation_sum",
	"rain_sum",
	"snowfall_sum",
	"precipitation_hours",
	"wind_speed_10m_max",
}

// Config holds Open-Meteo client settings
type Config struct {
	BaseURL       string
	Timezone      string
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
}

// DefaultConfig returns settings for the public historical archive API
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://archive-api.open-meteo.com/v1/archive",
		Timezone:      "Europe/London",
		Timeout:       30 * time.Second,
		RetryAttempts: 5,
		RetryBackoff:  200 * time.Millisecond,
	}
}

// Client fetches historical daily weather from the Open-Meteo archive API
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates an Open-Meteo client
func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// archiveResponse mirrors the JSON shape of the archive endpoint
type archiveResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Daily     dailyBlock `json:"daily"`
}

type dailyBlock struct {
	Time               []string  `json:"time"`
	TempMax            []float64 `json:"temperature_2m_max"`
	TempMin            []float64 `json:"temperature_2m_min"`
	TempMean           []float64 `json:"temperature_2m_mean"`
	PrecipitationSum   []float64 `json:"precipitation_sum"`
	RainSum            []float64 `json:"rain_sum"`
	SnowfallSum        []float64 `json:"snowfall_sum"`
	PrecipitationHours []float64 `json:"precipitation_hours"`
	WindSpeedMax       []float64 `json:"wind_speed_10m_max"`
}

// FetchDaily retrieves the daily series for one city over the date range
func (c *Client) FetchDaily(ctx context.Context, city weather.City, dates core.DateRange) ([]weather.DailyObservation, error) {
	if err := dates.Validate(); err != nil {
		return nil, err
	}
	endpoint := c.buildURL(city, dates)

	body, err := c.getWithRetry(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("open-meteo request for %s failed: %w", city.Name, err)
	}

	var resp archiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse open-meteo response for %s: %w", city.Name, err)
	}

	obs := make([]weather.DailyObservation, 0, len(resp.Daily.Time))
	for i, raw := range resp.Daily.Time {
		day, err := core.ParseDay(raw)
		if err != nil {
			// Malformed day in an otherwise valid series; skip it.
			continue
		}
		obs = append(obs, weather.DailyObservation{
			Date:               day,
			City:               city.Name,
			Latitude:           city.Latitude,
			Longitude:          city.Longitude,
			TempMax:            at(resp.Daily.TempMax, i),
			TempMin:            at(resp.Daily.TempMin, i),
			TempMean:           at(resp.Daily.TempMean, i),
			PrecipitationSum:   at(resp.Daily.PrecipitationSum, i),
			RainSum:            at(resp.Daily.RainSum, i),
			SnowfallSum:        at(resp.Daily.SnowfallSum, i),
			PrecipitationHours: at(resp.Daily.PrecipitationHours, i),
			WindSpeedMax:       at(resp.Daily.WindSpeedMax, i),
		})
	}

	if len(obs) == 0 {
		return nil, fmt.Errorf("open-meteo returned an empty series for %s: %w", city.Name, core.ErrNoData)
	}

	log.Printf("[OpenMeteo] %s: %d days retrieved", city.Name, len(obs))
	return obs, nil
}

// buildURL constructs the archive request URL
func (c *Client) buildURL(city weather.City, dates core.DateRange) string {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", city.Latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", city.Longitude))
	params.Set("start_date", dates.Start.String())
	params.Set("end_date", dates.End.String())
	params.Set("daily", strings.Join(dailyVariables, ","))
	params.Set("timezone", c.config.Timezone)
	return c.config.BaseURL + "?" + params.Encode()
}

// getWithRetry performs a GET with linear backoff on transient failures.
// Client errors (4xx) fail immediately; network errors and 5xx are retried.
func (c *Client) getWithRetry(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * c.config.RetryBackoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", core.ErrSourceUnavailable, c.config.RetryAttempts, lastErr)
}

// at reads a parallel array defensively; short arrays yield zero
func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
