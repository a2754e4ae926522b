// Package weather fetches the daily weather condition from an external
// feed. The feed serves a full year of entries keyed by month and day;
// the client picks the entry matching today.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

const dateLayout = "01-02"

// Config holds weather client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RatePerSecond caps outbound requests to the feed. Zero means
	// one request per second.
	RatePerSecond float64
}

// Client retrieves weather conditions over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	titler  cases.Caser
	now     func() time.Time
}

// NewClient creates a new weather client.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.RatePerSecond == 0 {
		config.RatePerSecond = 1
	}
	return &Client{
		baseURL: config.BaseURL,
		http:    &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RatePerSecond), 1),
		titler:  cases.Title(language.English),
		now:     time.Now,
	}
}

type entry struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// TodayWeather returns the condition for the current date, title-cased.
func (c *Client) TodayWeather(ctx context.Context) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("weather rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather.json", nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather feed returned status %d", resp.StatusCode)
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("decode weather feed: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("weather feed is empty")
	}

	today := c.now().Format(dateLayout)
	for _, e := range entries {
		if e.Date == today {
			return c.titler.String(e.Weather), nil
		}
	}
	return "", fmt.Errorf("no weather entry for today (%s)", today)
}
