package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// User represents a bar owner account. The email is the primary key, as in
// the registration form it doubles as the login identifier.
type User struct {
	Email        string `json:"email" gorm:"primaryKey;size:255"`
	Bar          string `json:"bar" gorm:"size:100;not null"`
	PasswordHash string `json:"-" gorm:"size:64;not null"` // Never expose in JSON

	// Spotify application credentials entered at registration. The secret
	// stays server-side; only the client id is returned to the SPA.
	ClientID     string `json:"client_id" gorm:"size:255;index"`
	ClientSecret string `json:"-" gorm:"size:255"`

	// Postal address and the coordinates geocoded from it. Coordinates are
	// nullable: geocoding is best effort and may not resolve.
	Address string   `json:"address,omitempty" gorm:"size:255"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`

	// Base64 image of the owner's handwritten signature.
	Signature string `json:"signature,omitempty" gorm:"type:longtext"`

	// Cached Spotify access token so the bar stays connected across restarts.
	SpotifyAccessToken string `json:"-" gorm:"size:1000"`

	// Email-confirmation token, removed together with the user.
	CreationTokenID string `json:"-" gorm:"size:36;index"`
	CreationToken   *Token `json:"-" gorm:"foreignKey:CreationTokenID;references:ID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HashPassword applies the fixed SHA-256 hex digest used for stored
// passwords. Unsalted single-pass, kept for compatibility with existing rows.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password string) {
	u.PasswordHash = HashPassword(password)
}

// CheckPassword reports whether the password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return u.PasswordHash == HashPassword(password)
}
