package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Track is one paid-for song in the playback history. Rows are append-only:
// the application never updates or deletes them, and the same song may
// appear many times if it was paid for in different moments.
type Track struct {
	// Autoincrement key independent of the Spotify id so duplicates are allowed.
	ID        uint   `json:"id" gorm:"primaryKey"`
	SpotifyID string `json:"spotify_id" gorm:"size:64;not null"`
	Title     string `json:"title" gorm:"size:255"`
	Artist    string `json:"artist" gorm:"size:255"`
	UserEmail string `json:"user_email" gorm:"size:255;index"`
	// AmountPaid is copied from the SONG plan price at write time and never
	// recomputed afterwards.
	AmountPaid  decimal.Decimal `json:"amount_paid" gorm:"type:decimal(10,2);not null"`
	RequestedAt time.Time       `json:"requested_at"`
}

// TableName keeps the original table name.
func (Track) TableName() string {
	return "tracks"
}
