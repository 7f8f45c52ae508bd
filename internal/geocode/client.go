package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Nominatim rejects anonymous-looking requests with 403, so the client
// presents a browser User-Agent and a Referer.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	referer   = "https://gramola-app.com"
)

// Coordinates is a geocoded point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Client resolves postal addresses against the OpenStreetMap Nominatim API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Nominatim client.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Coordinates resolves an address to a point. When the full address yields
// no hit and contains a comma, it retries with the substring after the last
// comma (a crude drop to city or region). A nil result with nil error means
// the address could not be resolved; callers treat that as "coordinates
// unavailable", never as a failure.
func (c *Client) Coordinates(ctx context.Context, address string) (*Coordinates, error) {
	coords, err := c.fetch(ctx, address)
	if err != nil {
		return nil, err
	}
	if coords == nil && strings.Contains(address, ",") {
		simplified := strings.TrimSpace(address[strings.LastIndex(address, ",")+1:])
		return c.fetch(ctx, simplified)
	}
	return coords, nil
}

func (c *Client) fetch(ctx context.Context, query string) (*Coordinates, error) {
	u := c.baseURL + "?q=" + url.QueryEscape(query) + "&format=json&limit=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned %s", resp.Status)
	}

	// Nominatim encodes lat/lon as strings inside a JSON array.
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}
	return &Coordinates{Lat: lat, Lng: lng}, nil
}
