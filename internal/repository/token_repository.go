package repository

import (
	"context"

	"gorm.io/gorm"

	"gramola/internal/model"
)

// TokenRepository defines persistence operations for confirmation and
// password-reset tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *model.Token) error
	Save(ctx context.Context, token *model.Token) error
	FindByID(ctx context.Context, id string) (*model.Token, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) Save(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Save(token).Error
}

func (r *tokenRepository) FindByID(ctx context.Context, id string) (*model.Token, error) {
	var token model.Token
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
