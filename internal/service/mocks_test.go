package service

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"

	"gramola/internal/geocode"
	"gramola/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByCreationTokenID(ctx context.Context, tokenID string) (*model.User, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByClientID(ctx context.Context, clientID string) ([]model.User, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccessTokenByClientID(ctx context.Context, clientID, accessToken string) error {
	args := m.Called(ctx, clientID, accessToken)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockTokenRepository is a mock implementation of TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(ctx context.Context, token *model.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) Save(ctx context.Context, token *model.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) FindByID(ctx context.Context, id string) (*model.Token, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlanRepository) CreateBatch(ctx context.Context, plans []model.SubscriptionPlan) error {
	args := m.Called(ctx, plans)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id string) (*model.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context) ([]model.SubscriptionPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubscriptionPlan), args.Error(1)
}

// MockTrackRepository is a mock implementation of TrackRepository.
type MockTrackRepository struct {
	mock.Mock
}

func (m *MockTrackRepository) Create(ctx context.Context, track *model.Track) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}

func (m *MockTrackRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Track, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Track), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *model.StripeTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) (*model.StripeTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StripeTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ClaimForOwner(ctx context.Context, id, email, data string) (bool, error) {
	args := m.Called(ctx, id, email, data)
	return args.Bool(0), args.Error(1)
}

// MockStripeGateway is a mock implementation of StripeGateway.
type MockStripeGateway struct {
	mock.Mock
}

func (m *MockStripeGateway) CreatePaymentIntent(amountCents int64, currency, description string) (*stripe.PaymentIntent, error) {
	args := m.Called(amountCents, currency, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *MockStripeGateway) GetPaymentIntent(id string) (*stripe.PaymentIntent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *MockStripeGateway) GetAccount() (*stripe.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Account), args.Error(1)
}

func (m *MockStripeGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockGeocoder is a mock implementation of Geocoder.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Coordinates(ctx context.Context, address string) (*geocode.Coordinates, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocode.Coordinates), args.Error(1)
}

// MockMailer is a mock implementation of mail.Sender.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockSpotifyAPI is a mock implementation of SpotifyAPI.
type MockSpotifyAPI struct {
	mock.Mock
}

func (m *MockSpotifyAPI) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (json.RawMessage, error) {
	args := m.Called(ctx, clientID, clientSecret, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSpotifyAPI) Devices(ctx context.Context, accessToken string) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSpotifyAPI) Playlists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSpotifyAPI) SearchTracks(ctx context.Context, accessToken, query string) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSpotifyAPI) QueueTrack(ctx context.Context, accessToken, trackURI string) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken, trackURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
