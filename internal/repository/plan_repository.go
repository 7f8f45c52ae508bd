package repository

import (
	"context"

	"gorm.io/gorm"

	"gramola/internal/model"
)

// PlanRepository defines persistence operations for subscription plans.
type PlanRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, plans []model.SubscriptionPlan) error
	FindByID(ctx context.Context, id string) (*model.SubscriptionPlan, error)
	List(ctx context.Context) ([]model.SubscriptionPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository builds a GORM-backed repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SubscriptionPlan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *planRepository) CreateBatch(ctx context.Context, plans []model.SubscriptionPlan) error {
	if len(plans) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&plans).Error
}

func (r *planRepository) FindByID(ctx context.Context, id string) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
