package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gramola/internal/errors"
	"gramola/internal/repository"
)

// SpotifyAPI is the outbound surface of the Spotify client, abstracted for
// testing.
type SpotifyAPI interface {
	ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (json.RawMessage, error)
	Devices(ctx context.Context, accessToken string) (json.RawMessage, error)
	Playlists(ctx context.Context, accessToken string) (json.RawMessage, error)
	SearchTracks(ctx context.Context, accessToken, query string) (json.RawMessage, error)
	QueueTrack(ctx context.Context, accessToken, trackURI string) (json.RawMessage, error)
}

// SpotifyService bridges the OAuth callback and the Web API passthroughs.
type SpotifyService interface {
	GetAuthorizationToken(ctx context.Context, code, clientID string) (json.RawMessage, error)
	Devices(ctx context.Context, accessToken string) (json.RawMessage, error)
	Playlists(ctx context.Context, accessToken string) (json.RawMessage, error)
	SearchTracks(ctx context.Context, accessToken, query string) (json.RawMessage, error)
	QueueTrack(ctx context.Context, accessToken, trackURI string) (json.RawMessage, error)
}

type spotifyService struct {
	userRepo repository.UserRepository
	api      SpotifyAPI
}

// NewSpotifyService creates a new Spotify bridge service.
func NewSpotifyService(userRepo repository.UserRepository, api SpotifyAPI) SpotifyService {
	return &spotifyService{userRepo: userRepo, api: api}
}

// GetAuthorizationToken exchanges the OAuth code for an access token using
// the client secret stored for the given client id, persists the token onto
// every account sharing that client id (accounts may deliberately share
// Spotify credentials), and relays the raw provider response.
func (s *spotifyService) GetAuthorizationToken(ctx context.Context, code, clientID string) (json.RawMessage, error) {
	users, err := s.userRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("find users by client id: %w", err)
	}
	if len(users) == 0 {
		return nil, errors.ErrSpotifyClientUnknown
	}
	clientSecret := users[0].ClientSecret

	raw, err := s.api.ExchangeCode(ctx, clientID, clientSecret, code)
	if err != nil {
		log.Printf("spotify token exchange failed: %v", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrSpotifyGateway, err)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.AccessToken == "" {
		log.Printf("spotify response carried no access token: %v", err)
		return raw, nil
	}

	if err := s.userRepo.UpdateAccessTokenByClientID(ctx, clientID, payload.AccessToken); err != nil {
		// Token persistence is a convenience; the exchange itself succeeded.
		log.Printf("could not persist spotify token: %v", err)
		return raw, nil
	}
	log.Printf("spotify token persisted for %d account(s) with client id %s", len(users), clientID)
	return raw, nil
}

func (s *spotifyService) Devices(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.api.Devices(ctx, accessToken)
}

func (s *spotifyService) Playlists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.api.Playlists(ctx, accessToken)
}

func (s *spotifyService) SearchTracks(ctx context.Context, accessToken, query string) (json.RawMessage, error) {
	return s.api.SearchTracks(ctx, accessToken, query)
}

func (s *spotifyService) QueueTrack(ctx context.Context, accessToken, trackURI string) (json.RawMessage, error) {
	return s.api.QueueTrack(ctx, accessToken, trackURI)
}
