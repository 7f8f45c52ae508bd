package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gramola/internal/errors"
	"gramola/internal/geocode"
	"gramola/internal/model"
)

const backURL = "http://localhost:8080"

func newUserServiceForTest(userRepo *MockUserRepository, tokenRepo *MockTokenRepository, geocoder *MockGeocoder, mailer *MockMailer) UserService {
	return NewUserService(userRepo, tokenRepo, geocoder, mailer, backURL)
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockUserRepository, *MockTokenRepository, *MockGeocoder, *MockMailer)
		expectedError error
		checkUser     func(*testing.T, *model.User)
	}{
		{
			name: "successful registration with coordinates",
			setupMocks: func(userRepo *MockUserRepository, tokenRepo *MockTokenRepository, geocoder *MockGeocoder, mailer *MockMailer) {
				userRepo.On("ExistsByEmail", mock.Anything, "owner@bar.com").Return(false, nil)
				geocoder.On("Coordinates", mock.Anything, "Calle Falsa 123, Madrid").
					Return(&geocode.Coordinates{Lat: 40.4, Lng: -3.7}, nil)
				tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mailer.On("Send", "owner@bar.com", mock.Anything, mock.Anything).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Equal(t, model.HashPassword("secret123"), user.PasswordHash)
				assert.NotNil(t, user.Lat)
				assert.Equal(t, 40.4, *user.Lat)
				assert.NotEmpty(t, user.CreationTokenID)
			},
		},
		{
			name: "duplicate email rejected without creating a row",
			setupMocks: func(userRepo *MockUserRepository, tokenRepo *MockTokenRepository, geocoder *MockGeocoder, mailer *MockMailer) {
				userRepo.On("ExistsByEmail", mock.Anything, "owner@bar.com").Return(true, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name: "registration succeeds when geocoding finds nothing",
			setupMocks: func(userRepo *MockUserRepository, tokenRepo *MockTokenRepository, geocoder *MockGeocoder, mailer *MockMailer) {
				userRepo.On("ExistsByEmail", mock.Anything, "owner@bar.com").Return(false, nil)
				geocoder.On("Coordinates", mock.Anything, mock.Anything).Return(nil, nil)
				tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Nil(t, user.Lat)
				assert.Nil(t, user.Lng)
			},
		},
		{
			name: "registration succeeds when geocoding errors",
			setupMocks: func(userRepo *MockUserRepository, tokenRepo *MockTokenRepository, geocoder *MockGeocoder, mailer *MockMailer) {
				userRepo.On("ExistsByEmail", mock.Anything, "owner@bar.com").Return(false, nil)
				geocoder.On("Coordinates", mock.Anything, mock.Anything).Return(nil, stderrors.New("nominatim returned 403"))
				tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "registration succeeds when the confirmation email fails",
			setupMocks: func(userRepo *MockUserRepository, tokenRepo *MockTokenRepository, geocoder *MockGeocoder, mailer *MockMailer) {
				userRepo.On("ExistsByEmail", mock.Anything, "owner@bar.com").Return(false, nil)
				geocoder.On("Coordinates", mock.Anything, mock.Anything).Return(nil, nil)
				tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(stderrors.New("smtp: connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tokenRepo := new(MockTokenRepository)
			geocoder := new(MockGeocoder)
			mailer := new(MockMailer)
			tt.setupMocks(userRepo, tokenRepo, geocoder, mailer)

			var created *model.User
			for _, call := range userRepo.ExpectedCalls {
				if call.Method == "Create" {
					call.Run(func(args mock.Arguments) {
						created = args.Get(1).(*model.User)
					})
				}
			}

			svc := newUserServiceForTest(userRepo, tokenRepo, geocoder, mailer)
			err := svc.Register(context.Background(), "El Bar", "owner@bar.com", "secret123",
				"client-id", "client-secret", "Calle Falsa 123, Madrid", "c2ln")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				if tt.checkUser != nil {
					assert.NotNil(t, created)
					tt.checkUser(t, created)
				}
			}
			userRepo.AssertExpectations(t)
			tokenRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	usedToken := model.NewToken()
	usedToken.Use()
	pendingToken := model.NewToken()

	confirmedUser := &model.User{
		Email:         "owner@bar.com",
		Bar:           "El Bar",
		PasswordHash:  model.HashPassword("secret123"),
		CreationToken: usedToken,
	}
	unconfirmedUser := &model.User{
		Email:         "new@bar.com",
		PasswordHash:  model.HashPassword("secret123"),
		CreationToken: pendingToken,
	}

	tests := []struct {
		name          string
		email         string
		pwd           string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful login",
			email: "owner@bar.com",
			pwd:   "secret123",
			setupMock: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(confirmedUser, nil)
			},
		},
		{
			name:  "unknown email",
			email: "ghost@bar.com",
			pwd:   "secret123",
			setupMock: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "ghost@bar.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			email: "owner@bar.com",
			pwd:   "nope",
			setupMock: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(confirmedUser, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:  "unconfirmed account",
			email: "new@bar.com",
			pwd:   "secret123",
			setupMock: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "new@bar.com").Return(unconfirmedUser, nil)
			},
			expectedError: errors.ErrEmailNotConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			svc := newUserServiceForTest(userRepo, new(MockTokenRepository), new(MockGeocoder), new(MockMailer))
			user, err := svc.Login(context.Background(), tt.email, tt.pwd)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestUserService_ConfirmToken(t *testing.T) {
	freshToken := func() *model.Token { return model.NewToken() }
	expiredToken := func() *model.Token {
		tok := model.NewToken()
		tok.CreationTime = time.Now().Add(-31 * time.Minute).UnixMilli()
		return tok
	}
	consumedToken := func() *model.Token {
		tok := model.NewToken()
		tok.Use()
		return tok
	}

	tests := []struct {
		name          string
		token         *model.Token
		suppliedID    func(*model.Token) string
		expectedError error
		expectSave    bool
	}{
		{
			name:       "valid token is consumed",
			token:      freshToken(),
			suppliedID: func(tok *model.Token) string { return tok.ID },
			expectSave: true,
		},
		{
			name:          "mismatched token id",
			token:         freshToken(),
			suppliedID:    func(*model.Token) string { return "other-id" },
			expectedError: errors.ErrTokenMismatch,
		},
		{
			name:          "expired token",
			token:         expiredToken(),
			suppliedID:    func(tok *model.Token) string { return tok.ID },
			expectedError: errors.ErrTokenExpired,
		},
		{
			name:          "already used token",
			token:         consumedToken(),
			suppliedID:    func(tok *model.Token) string { return tok.ID },
			expectedError: errors.ErrTokenUsed,
		},
		{
			name:          "user without creation token",
			token:         nil,
			suppliedID:    func(*model.Token) string { return "whatever" },
			expectedError: errors.ErrNoCreationToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{Email: "owner@bar.com", CreationToken: tt.token}
			userRepo := new(MockUserRepository)
			userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(user, nil)

			tokenRepo := new(MockTokenRepository)
			if tt.expectSave {
				tokenRepo.On("Save", mock.Anything, tt.token).Return(nil)
			}

			svc := newUserServiceForTest(userRepo, tokenRepo, new(MockGeocoder), new(MockMailer))
			err := svc.ConfirmToken(context.Background(), "owner@bar.com", tt.suppliedID(tt.token))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.token.IsUsed())
			}
			tokenRepo.AssertExpectations(t)
		})
	}

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ghost@bar.com").Return(nil, gorm.ErrRecordNotFound)

		svc := newUserServiceForTest(userRepo, new(MockTokenRepository), new(MockGeocoder), new(MockMailer))
		err := svc.ConfirmToken(context.Background(), "ghost@bar.com", "id")
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	user := &model.User{Email: "owner@bar.com", PasswordHash: model.HashPassword("old")}

	t.Run("successful reset consumes the token", func(t *testing.T) {
		tok := model.NewToken()
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(user, nil)
		userRepo.On("UpdatePassword", mock.Anything, "owner@bar.com", model.HashPassword("brand-new-pwd")).Return(nil)

		tokenRepo := new(MockTokenRepository)
		tokenRepo.On("FindByID", mock.Anything, tok.ID).Return(tok, nil)
		tokenRepo.On("Save", mock.Anything, tok).Return(nil)

		svc := newUserServiceForTest(userRepo, tokenRepo, new(MockGeocoder), new(MockMailer))
		err := svc.ResetPassword(context.Background(), "owner@bar.com", tok.ID, "brand-new-pwd")

		assert.NoError(t, err)
		assert.True(t, tok.IsUsed())
		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("expired reset token", func(t *testing.T) {
		tok := model.NewToken()
		tok.CreationTime = time.Now().Add(-time.Hour).UnixMilli()

		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(user, nil)
		tokenRepo := new(MockTokenRepository)
		tokenRepo.On("FindByID", mock.Anything, tok.ID).Return(tok, nil)

		svc := newUserServiceForTest(userRepo, tokenRepo, new(MockGeocoder), new(MockMailer))
		err := svc.ResetPassword(context.Background(), "owner@bar.com", tok.ID, "brand-new-pwd")

		assert.ErrorIs(t, err, errors.ErrTokenExpired)
		userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown token id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(user, nil)
		tokenRepo := new(MockTokenRepository)
		tokenRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := newUserServiceForTest(userRepo, tokenRepo, new(MockGeocoder), new(MockMailer))
		err := svc.ResetPassword(context.Background(), "owner@bar.com", "missing", "brand-new-pwd")

		assert.ErrorIs(t, err, errors.ErrTokenNotFound)
	})
}

func TestUserService_CreatePasswordResetToken(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ghost@bar.com").Return(nil, gorm.ErrRecordNotFound)

		svc := newUserServiceForTest(userRepo, new(MockTokenRepository), new(MockGeocoder), new(MockMailer))
		_, err := svc.CreatePasswordResetToken(context.Background(), "ghost@bar.com")
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("creates a standalone token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "owner@bar.com").Return(&model.User{Email: "owner@bar.com"}, nil)
		tokenRepo := new(MockTokenRepository)
		tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

		svc := newUserServiceForTest(userRepo, tokenRepo, new(MockGeocoder), new(MockMailer))
		id, err := svc.CreatePasswordResetToken(context.Background(), "owner@bar.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
		tokenRepo.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByEmail", mock.Anything, "ghost@bar.com").Return(false, nil)

		svc := newUserServiceForTest(userRepo, new(MockTokenRepository), new(MockGeocoder), new(MockMailer))
		err := svc.Delete(context.Background(), "ghost@bar.com")
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("existing user removed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByEmail", mock.Anything, "owner@bar.com").Return(true, nil)
		userRepo.On("Delete", mock.Anything, "owner@bar.com").Return(nil)

		svc := newUserServiceForTest(userRepo, new(MockTokenRepository), new(MockGeocoder), new(MockMailer))
		err := svc.Delete(context.Background(), "owner@bar.com")
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}
