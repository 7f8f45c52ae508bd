package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"gramola/internal/errors"
	"gramola/internal/model"
	"gramola/internal/repository"
)

// MusicService records paid-for songs into the playback history.
type MusicService interface {
	SaveTrack(ctx context.Context, spotifyID, title, artist, userEmail string) error
	History(ctx context.Context, userEmail string) ([]model.Track, error)
}

type musicService struct {
	trackRepo repository.TrackRepository
	planRepo  repository.PlanRepository
}

// NewMusicService creates a new music service.
func NewMusicService(trackRepo repository.TrackRepository, planRepo repository.PlanRepository) MusicService {
	return &musicService{trackRepo: trackRepo, planRepo: planRepo}
}

// SaveTrack appends an immutable history row stamped with the SONG plan's
// current price and the current time. The price always comes from the plan
// table, never from the request. There is no idempotency guard: paying for
// the same song twice records two rows.
func (s *musicService) SaveTrack(ctx context.Context, spotifyID, title, artist, userEmail string) error {
	plan, err := s.planRepo.FindByID(ctx, model.PlanSong)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrSongPlanMissing
		}
		return fmt.Errorf("find song plan: %w", err)
	}

	track := &model.Track{
		SpotifyID:   spotifyID,
		Title:       title,
		Artist:      artist,
		UserEmail:   userEmail,
		AmountPaid:  plan.Price,
		RequestedAt: time.Now(),
	}
	if err := s.trackRepo.Create(ctx, track); err != nil {
		return fmt.Errorf("save track: %w", err)
	}

	log.Printf("track recorded: %s | amount: %s", title, plan.Price.StringFixed(2))
	return nil
}

// History lists the tracks requested through the given account, newest first.
func (s *musicService) History(ctx context.Context, userEmail string) ([]model.Track, error) {
	tracks, err := s.trackRepo.ListByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	return tracks, nil
}
