package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/database"
	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/internal/utils"
	"github.com/sirupsen/logrus"
)

// Client resolves place names via Nominatim and routes via OSRM. Results are
// cached in Redis keyed by normalized place name (geocoding) and by the
// geohash pair of the endpoints (routing).
type Client struct {
	cfg         models.GeoConfig
	httpClient  *http.Client
	redisClient *database.RedisClient
}

// NewClient creates a new geospatial resolver client
func NewClient(cfg models.GeoConfig, redisClient *database.RedisClient) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: timeout},
		redisClient: redisClient,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode resolves a free-text place name to coordinates
func (c *Client) Geocode(ctx context.Context, address string) (*Place, error) {
	cacheKey := fmt.Sprintf(constants.KeyGeoPlace, utils.CacheKeyText(address))
	if place := c.cachedPlace(ctx, cacheKey); place != nil {
		return place, nil
	}

	reqURL := fmt.Sprintf("%s/search?%s", c.cfg.NominatimURL, url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	// Nominatim usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding failed with status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}

	place := &Place{
		Name:   results[0].DisplayName,
		Coords: Coordinates{Lat: lat, Lng: lng},
	}
	c.cachePut(ctx, cacheKey, place)

	return place, nil
}

type osrmResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat] pairs
		} `json:"geometry"`
	} `json:"routes"`
}

// Route computes a driving route geometry between two coordinate pairs
func (c *Client) Route(ctx context.Context, start, end Coordinates) (Polyline, error) {
	cacheKey := fmt.Sprintf(constants.KeyGeoRoute, routeCacheKey(start, end))
	if line := c.cachedRoute(ctx, cacheKey); line != nil {
		return line, nil
	}

	// OSRM takes "lng,lat" pairs
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.cfg.OSRMURL, start.Lng, start.Lat, end.Lng, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build route request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing failed with status %d", resp.StatusCode)
	}

	var osrm osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&osrm); err != nil {
		return nil, fmt.Errorf("failed to decode route response: %w", err)
	}

	if len(osrm.Routes) == 0 {
		return nil, ErrNotFound
	}

	coords := osrm.Routes[0].Geometry.Coordinates
	line := make(Polyline, 0, len(coords))
	for _, pair := range coords {
		if len(pair) < 2 {
			continue
		}
		line = append(line, Coordinates{Lat: pair[1], Lng: pair[0]})
	}

	if len(line) == 0 {
		return nil, ErrNotFound
	}
	c.cachePut(ctx, cacheKey, line)

	return line, nil
}

// routeCacheKey identifies a route by the geohash of its endpoints, so nearby
// geocoding jitter still lands on the same cached geometry.
func routeCacheKey(start, end Coordinates) string {
	return geohash.EncodeWithPrecision(start.Lat, start.Lng, 7) + ":" +
		geohash.EncodeWithPrecision(end.Lat, end.Lng, 7)
}

func (c *Client) cachedPlace(ctx context.Context, key string) *Place {
	if c.redisClient == nil {
		return nil
	}

	raw, err := c.redisClient.Get(ctx, key)
	if err != nil {
		return nil
	}

	var place Place
	if err := json.Unmarshal([]byte(raw), &place); err != nil {
		return nil
	}
	return &place
}

func (c *Client) cachedRoute(ctx context.Context, key string) Polyline {
	if c.redisClient == nil {
		return nil
	}

	raw, err := c.redisClient.Get(ctx, key)
	if err != nil {
		return nil
	}

	var line Polyline
	if err := json.Unmarshal([]byte(raw), &line); err != nil {
		return nil
	}
	return line
}

func (c *Client) cachePut(ctx context.Context, key string, value interface{}) {
	if c.redisClient == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	ttl := time.Duration(c.cfg.CacheTTLHours) * time.Hour
	if err := c.redisClient.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to cache geo result", logrus.Fields{
			"key":   key,
			"error": err.Error(),
		})
	}
}
