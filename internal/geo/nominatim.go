package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"replink_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Geocoder resolves coordinates to a human-readable place name.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) string
}

// Client talks to a Nominatim-compatible endpoint. Lookups are best effort:
// any failure degrades to an empty location string and a warning log, never
// an error to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
}

type Option func(*Client)

// WithCache enables Redis-backed caching of resolved names. Coordinates are
// rounded to four decimals for the key, which is roughly ten meters.
func WithCache(rdb *redis.Client, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = rdb
		c.cacheTTL = ttl
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("geo:%.4f:%.4f", lat, lon)
}

// Reverse returns the display name for the coordinates, or "" when the
// lookup fails for any reason.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) string {
	if c.cache != nil {
		if name, err := c.cache.Get(ctx, cacheKey(lat, lon)).Result(); err == nil {
			return name
		}
	}

	name, err := c.lookup(ctx, lat, lon)
	if err != nil {
		logger.WithError(err).Warn("reverse geocode failed",
			"lat", lat,
			"lon", lon,
		)
		return ""
	}

	if c.cache != nil && name != "" {
		if err := c.cache.Set(ctx, cacheKey(lat, lon), name, c.cacheTTL).Err(); err != nil {
			logger.WithError(err).Warn("geocode cache write failed")
		}
	}
	return name
}

func (c *Client) lookup(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "replink-backend/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.DisplayName, nil
}
