package repository

import (
	"context"

	"gorm.io/gorm"

	"gramola/internal/model"
)

// TransactionRepository defines persistence operations for Stripe
// transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.StripeTransaction) error
	FindByID(ctx context.Context, id string) (*model.StripeTransaction, error)
	// ClaimForOwner records the final provider payload and the resolved
	// owner email on a not-yet-confirmed transaction. Returns false when
	// the row was already claimed, so two racing confirmations cannot both
	// win.
	ClaimForOwner(ctx context.Context, id, email, data string) (bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds a GORM-backed repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *model.StripeTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id string) (*model.StripeTransaction, error) {
	var tx model.StripeTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// ClaimForOwner is a conditional update keyed on the owner column still
// being empty; the first confirmation wins and later ones see zero rows
// affected.
func (r *transactionRepository) ClaimForOwner(ctx context.Context, id, email, data string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.StripeTransaction{}).
		Where("id = ? AND (email IS NULL OR email = '')", id).
		Updates(map[string]interface{}{"email": email, "data": data})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
