package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gramola/internal/errors"
	"gramola/internal/model"
)

func TestSpotifyService_GetAuthorizationToken(t *testing.T) {
	sharedUsers := []model.User{
		{Email: "one@bar.com", ClientID: "cid", ClientSecret: "shh"},
		{Email: "two@bar.com", ClientID: "cid", ClientSecret: "shh"},
	}
	tokenResponse := json.RawMessage(`{"access_token":"at-123","token_type":"Bearer"}`)

	t.Run("unknown client id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByClientID", mock.Anything, "nobody").Return([]model.User{}, nil)

		svc := NewSpotifyService(userRepo, new(MockSpotifyAPI))
		_, err := svc.GetAuthorizationToken(context.Background(), "code", "nobody")
		assert.ErrorIs(t, err, errors.ErrSpotifyClientUnknown)
	})

	t.Run("exchange failure surfaces as a gateway error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByClientID", mock.Anything, "cid").Return(sharedUsers, nil)

		api := new(MockSpotifyAPI)
		api.On("ExchangeCode", mock.Anything, "cid", "shh", "bad-code").
			Return(nil, assert.AnError)

		svc := NewSpotifyService(userRepo, api)
		_, err := svc.GetAuthorizationToken(context.Background(), "bad-code", "cid")
		assert.ErrorIs(t, err, errors.ErrSpotifyGateway)
	})

	t.Run("token is persisted onto every account sharing the client id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByClientID", mock.Anything, "cid").Return(sharedUsers, nil)
		userRepo.On("UpdateAccessTokenByClientID", mock.Anything, "cid", "at-123").Return(nil)

		api := new(MockSpotifyAPI)
		api.On("ExchangeCode", mock.Anything, "cid", "shh", "code").Return(tokenResponse, nil)

		svc := NewSpotifyService(userRepo, api)
		raw, err := svc.GetAuthorizationToken(context.Background(), "code", "cid")

		assert.NoError(t, err)
		assert.JSONEq(t, string(tokenResponse), string(raw))
		userRepo.AssertExpectations(t)
	})

	t.Run("persistence failure still relays the provider response", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByClientID", mock.Anything, "cid").Return(sharedUsers, nil)
		userRepo.On("UpdateAccessTokenByClientID", mock.Anything, "cid", "at-123").Return(assert.AnError)

		api := new(MockSpotifyAPI)
		api.On("ExchangeCode", mock.Anything, "cid", "shh", "code").Return(tokenResponse, nil)

		svc := NewSpotifyService(userRepo, api)
		raw, err := svc.GetAuthorizationToken(context.Background(), "code", "cid")

		assert.NoError(t, err)
		assert.JSONEq(t, string(tokenResponse), string(raw))
	})

	t.Run("response without an access token is relayed untouched", func(t *testing.T) {
		odd := json.RawMessage(`{"scope":"user-read-playback-state"}`)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByClientID", mock.Anything, "cid").Return(sharedUsers, nil)

		api := new(MockSpotifyAPI)
		api.On("ExchangeCode", mock.Anything, "cid", "shh", "code").Return(odd, nil)

		svc := NewSpotifyService(userRepo, api)
		raw, err := svc.GetAuthorizationToken(context.Background(), "code", "cid")

		assert.NoError(t, err)
		assert.JSONEq(t, string(odd), string(raw))
		userRepo.AssertNotCalled(t, "UpdateAccessTokenByClientID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSpotifyService_Passthroughs(t *testing.T) {
	devices := json.RawMessage(`{"devices":[]}`)

	api := new(MockSpotifyAPI)
	api.On("Devices", mock.Anything, "at-123").Return(devices, nil)
	api.On("SearchTracks", mock.Anything, "at-123", "query").Return(devices, nil)
	api.On("QueueTrack", mock.Anything, "at-123", "spotify:track:abc").Return(json.RawMessage("{}"), nil)

	svc := NewSpotifyService(new(MockUserRepository), api)

	raw, err := svc.Devices(context.Background(), "at-123")
	assert.NoError(t, err)
	assert.JSONEq(t, string(devices), string(raw))

	_, err = svc.SearchTracks(context.Background(), "at-123", "query")
	assert.NoError(t, err)

	_, err = svc.QueueTrack(context.Background(), "at-123", "spotify:track:abc")
	assert.NoError(t, err)
	api.AssertExpectations(t)
}
