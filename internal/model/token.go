package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenValidity is how long a token can be redeemed after creation.
const TokenValidity = 30 * time.Minute

// Token is a single-use, time-limited identifier proving control of an
// email address. It backs both account confirmation (owned 1:1 by a User)
// and password reset (looked up standalone by id).
type Token struct {
	ID string `json:"id" gorm:"type:char(36);primaryKey"`
	// CreationTime and UseTime are millisecond epoch stamps.
	// UseTime == 0 means the token is still pending.
	CreationTime int64 `json:"creation_time" gorm:"not null"`
	UseTime      int64 `json:"use_time" gorm:"not null;default:0"`
}

// NewToken returns a pending token with a fresh random id.
func NewToken() *Token {
	return &Token{
		ID:           uuid.New().String(),
		CreationTime: time.Now().UnixMilli(),
	}
}

// BeforeCreate sets the id and creation time if the token was built bare.
func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreationTime == 0 {
		t.CreationTime = time.Now().UnixMilli()
	}
	return nil
}

// IsUsed reports whether the token has been consumed.
func (t *Token) IsUsed() bool {
	return t.UseTime > 0
}

// Use marks the token as consumed. This is the terminal transition of the
// token's lifecycle; a used token is permanently invalid.
func (t *Token) Use() {
	t.UseTime = time.Now().UnixMilli()
}

// IsExpired reports whether the token is older than the validity window at
// the given instant.
func (t *Token) IsExpired(now time.Time) bool {
	return t.CreationTime < now.Add(-TokenValidity).UnixMilli()
}
