package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL   = "https://api.spotify.com/v1"
)

// Client talks to the Spotify accounts service and Web API. Passthrough
// calls relay the provider's JSON unmodified; there is no caching, retry or
// rate-limit handling here.
type Client struct {
	tokenURL    string
	apiURL      string
	redirectURI string
	httpClient  *http.Client
}

// NewClient creates a Spotify client. The redirect URI must match the one
// registered in the application's Spotify dashboard.
func NewClient(redirectURI string) *Client {
	return &Client{
		tokenURL:    defaultTokenURL,
		apiURL:      defaultAPIURL,
		redirectURI: redirectURI,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ExchangeCode swaps an OAuth authorization code for an access token using
// HTTP Basic auth of (clientID, clientSecret). The raw provider response is
// returned verbatim for the caller to relay.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned %s: %s", resp.Status, body)
	}
	return json.RawMessage(body), nil
}

// Devices lists the playback devices linked to the account.
func (c *Client) Devices(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, "/me/player/devices", accessToken)
}

// Playlists lists the owner's playlists.
func (c *Client) Playlists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, "/me/playlists", accessToken)
}

// SearchTracks searches the catalog, capped at 10 track results.
func (c *Client) SearchTracks(ctx context.Context, accessToken, query string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, "/search?q="+url.QueryEscape(query)+"&type=track&limit=10", accessToken)
}

// QueueTrack appends a track URI to the active device's playback queue.
func (c *Client) QueueTrack(ctx context.Context, accessToken, trackURI string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodPost, "/me/player/queue?uri="+url.QueryEscape(trackURI), accessToken)
}

func (c *Client) call(ctx context.Context, method, path, accessToken string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("spotify api returned %s: %s", resp.Status, body)
	}
	if len(body) == 0 {
		// Some endpoints (queue) answer 204 with an empty body.
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(body), nil
}
