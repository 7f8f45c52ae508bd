package repository

import (
	"context"

	"gorm.io/gorm"

	"gramola/internal/model"
)

// TrackRepository defines persistence operations for the playback history.
// The history is append-only; there is no update or delete.
type TrackRepository interface {
	Create(ctx context.Context, track *model.Track) error
	ListByUserEmail(ctx context.Context, email string) ([]model.Track, error)
}

type trackRepository struct {
	db *gorm.DB
}

// NewTrackRepository builds a GORM-backed repository.
func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) Create(ctx context.Context, track *model.Track) error {
	return r.db.WithContext(ctx).Create(track).Error
}

func (r *trackRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Track, error) {
	var tracks []model.Track
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).Order("requested_at DESC").Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}
