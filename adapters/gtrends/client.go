package gtrends

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
)

// Config holds search-interest client settings
type Config struct {
	BaseURL  string
	Geo      string
	Language string
	Timeout  time.Duration
}

// DefaultConfig targets UK web search
func DefaultConfig() Config {
	return Config{
		BaseURL:  "https://trends.google.com/trends/api/widgetdata/multiline",
		Geo:      "GB",
		Language: "en-GB",
		Timeout:  30 * time.Second,
	}
}

// Client fetches relative search-interest time series. The provider scales
// each series to 0-100 against its own peak within the requested range.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a search-interest client
func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// FetchInterest retrieves the interest-over-time series for one keyword
func (c *Client) FetchInterest(ctx context.Context, keyword string, dates core.DateRange) ([]trends.InterestPoint, error) {
	if err := dates.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(keyword, dates), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: trends request for %q: %v", core.ErrSourceUnavailable, keyword, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read trends response for %q: %w", keyword, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: trends rate limit hit for %q", core.ErrSourceUnavailable, keyword)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends returned status %d for %q", resp.StatusCode, keyword)
	}

	points, err := parseTimeline(body, keyword)
	if err != nil {
		return nil, err
	}

	log.Printf("[Trends] %q: %d data points retrieved", keyword, len(points))
	return points, nil
}

// buildURL constructs the interest-over-time request URL
func (c *Client) buildURL(keyword string, dates core.DateRange) string {
	params := url.Values{}
	params.Set("hl", c.config.Language)
	params.Set("tz", "0")
	params.Set("geo", c.config.Geo)
	params.Set("q", keyword)
	params.Set("date", dates.Start.String()+" "+dates.End.String())
	return c.config.BaseURL + "?" + params.Encode()
}

// parseTimeline extracts interest points from the provider's JSON. Responses
// carry an anti-XSSI prefix before the JSON body, which is stripped first.
func parseTimeline(body []byte, keyword string) ([]trends.InterestPoint, error) {
	payload := strings.TrimSpace(string(body))
	if idx := strings.IndexByte(payload, '{'); idx > 0 {
		payload = payload[idx:]
	}

	timeline := gjson.Get(payload, "default.timelineData")
	if !timeline.Exists() || !timeline.IsArray() {
		return nil, fmt.Errorf("unexpected trends response shape for %q", keyword)
	}

	var points []trends.InterestPoint
	timeline.ForEach(func(_, entry gjson.Result) bool {
		secs, err := strconv.ParseInt(entry.Get("time").String(), 10, 64)
		if err != nil {
			return true
		}
		values := entry.Get("value").Array()
		if len(values) == 0 {
			return true
		}
		points = append(points, trends.InterestPoint{
			Date:         core.NewDay(time.Unix(secs, 0).UTC()),
			Keyword:      keyword,
			SearchVolume: int(values[0].Int()),
			IsPartial:    entry.Get("isPartial").Bool(),
		})
		return true
	})
	return points, nil
}
