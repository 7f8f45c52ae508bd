package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"gorm.io/gorm"

	"gramola/internal/errors"
	"gramola/internal/geocode"
	"gramola/internal/mail"
	"gramola/internal/model"
	"gramola/internal/repository"
)

// Geocoder resolves postal addresses to coordinates. nil, nil means the
// address could not be resolved.
type Geocoder interface {
	Coordinates(ctx context.Context, address string) (*geocode.Coordinates, error)
}

// UserService handles registration, authentication and the token lifecycle.
type UserService interface {
	Register(ctx context.Context, bar, email, pwd, clientID, clientSecret, address, signature string) error
	Login(ctx context.Context, email, pwd string) (*model.User, error)
	ConfirmToken(ctx context.Context, email, tokenID string) error
	CreatePasswordResetToken(ctx context.Context, email string) (string, error)
	SendResetPasswordEmail(email, link string)
	ResetPassword(ctx context.Context, email, tokenID, newPwd string) error
	Delete(ctx context.Context, email string) error
}

type userService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	geocoder  Geocoder
	mailer    mail.Sender
	backURL   string
}

// NewUserService creates a new user service. backURL is this server's
// public base URL, used in emailed confirmation links.
func NewUserService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	geocoder Geocoder,
	mailer mail.Sender,
	backURL string,
) UserService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		geocoder:  geocoder,
		mailer:    mailer,
		backURL:   backURL,
	}
}

// Register persists a new bar owner with a hashed password, best-effort
// geocoded coordinates and a fresh confirmation token, then sends the
// confirmation email. Geocoding and mail failures are logged and never roll
// back the created account.
func (s *userService) Register(ctx context.Context, bar, email, pwd, clientID, clientSecret, address, signature string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return errors.ErrEmailTaken
	}

	user := &model.User{
		Email:        email,
		Bar:          bar,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Address:      address,
		Signature:    signature,
	}
	user.SetPassword(pwd)

	if address != "" {
		coords, err := s.geocoder.Coordinates(ctx, address)
		switch {
		case err != nil:
			log.Printf("geocoding %q failed: %v", address, err)
		case coords == nil:
			log.Printf("no coordinates found for %q", address)
		default:
			user.Lat = &coords.Lat
			user.Lng = &coords.Lng
		}
	}

	token := model.NewToken()
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("create confirmation token: %w", err)
	}
	user.CreationTokenID = token.ID
	user.CreationToken = token

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.sendConfirmationEmail(user, token)
	log.Printf("bar registered: %s", bar)
	return nil
}

func (s *userService) sendConfirmationEmail(user *model.User, token *model.Token) {
	link := s.backURL + "/users/confirmToken/" + url.PathEscape(user.Email) +
		"?token=" + url.QueryEscape(token.ID)

	body := "Hello " + user.Bar + ",\n\n" +
		"Thanks for signing up. Click the link to continue with the payment:\n\n" +
		link
	if err := s.mailer.Send(user.Email, "Gramola: confirm your account", body); err != nil {
		// The account is already persisted; a mail failure must not undo it.
		log.Printf("confirmation email to %s failed: %v", user.Email, err)
		return
	}
	log.Printf("confirmation email sent to %s", user.Email)
}

// Login verifies credentials and that the account's email was confirmed.
// Unknown email and wrong password answer identically.
func (s *userService) Login(ctx context.Context, email, pwd string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.CheckPassword(pwd) {
		return nil, errors.ErrInvalidCredentials
	}
	if user.CreationToken != nil && !user.CreationToken.IsUsed() {
		return nil, errors.ErrEmailNotConfirmed
	}
	return user, nil
}

// ConfirmToken consumes the user's confirmation token. Marking it used is
// the terminal, one-way transition of the token's lifecycle.
func (s *userService) ConfirmToken(ctx context.Context, email, tokenID string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	token := user.CreationToken
	if token == nil {
		return errors.ErrNoCreationToken
	}
	if token.ID != tokenID {
		return errors.ErrTokenMismatch
	}
	if token.IsExpired(time.Now()) {
		return errors.ErrTokenExpired
	}
	if token.IsUsed() {
		return errors.ErrTokenUsed
	}

	token.Use()
	return s.tokenRepo.Save(ctx, token)
}

// CreatePasswordResetToken persists a brand-new standalone token and
// returns its id for the caller to embed in the emailed link.
func (s *userService) CreatePasswordResetToken(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	token := model.NewToken()
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("create reset token: %w", err)
	}
	return token.ID, nil
}

// SendResetPasswordEmail is fire and forget: failures are logged only.
func (s *userService) SendResetPasswordEmail(email, link string) {
	body := "Hello,\n\n" +
		"We received a request to reset your password.\n" +
		"Click the following link to set a new one:\n\n" +
		link + "\n\n" +
		"The link expires in 30 minutes.\n" +
		"If this was not you, ignore this message."
	if err := s.mailer.Send(email, "Password recovery - La Gramola", body); err != nil {
		log.Printf("reset email to %s failed: %v", email, err)
	}
}

// ResetPassword rehashes and stores the new password after validating the
// standalone reset token, then consumes the token.
func (s *userService) ResetPassword(ctx context.Context, email, tokenID, newPwd string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTokenNotFound
		}
		return fmt.Errorf("find token: %w", err)
	}
	if token.IsExpired(time.Now()) {
		return errors.ErrTokenExpired
	}
	if token.IsUsed() {
		return errors.ErrTokenUsed
	}

	if err := s.userRepo.UpdatePassword(ctx, email, model.HashPassword(newPwd)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	token.Use()
	return s.tokenRepo.Save(ctx, token)
}

// Delete removes the account and its owned confirmation token.
func (s *userService) Delete(ctx context.Context, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if !exists {
		return errors.ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, email)
}
