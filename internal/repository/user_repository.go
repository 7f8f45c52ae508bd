package repository

import (
	"context"

	"gorm.io/gorm"

	"gramola/internal/model"
)

// UserRepository defines persistence operations for bar owner accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByCreationTokenID(ctx context.Context, tokenID string) (*model.User, error)
	FindByClientID(ctx context.Context, clientID string) ([]model.User, error)
	UpdateAccessTokenByClientID(ctx context.Context, clientID, accessToken string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, email string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByEmail loads a user together with its confirmation token.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("CreationToken").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByCreationTokenID(ctx context.Context, tokenID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("creation_token_id = ?", tokenID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByClientID(ctx context.Context, clientID string) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateAccessTokenByClientID writes the exchanged Spotify token onto every
// account sharing the client id in one statement.
func (r *userRepository) UpdateAccessTokenByClientID(ctx context.Context, clientID, accessToken string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("client_id = ?", clientID).
		Update("spotify_access_token", accessToken).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the user and its owned confirmation token in one transaction.
func (r *userRepository) Delete(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		if user.CreationTokenID != "" {
			if err := tx.Where("id = ?", user.CreationTokenID).Delete(&model.Token{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
