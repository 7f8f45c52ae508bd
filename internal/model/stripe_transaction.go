package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StripeTransaction records a payment intent created through Stripe. The
// full provider payload is kept as an opaque JSON blob; the owner email is
// set only once the payment has been confirmed against the provider.
type StripeTransaction struct {
	ID string `json:"id" gorm:"type:char(36);primaryKey"`
	// Data holds the latest known payment-intent state as returned by the
	// provider. TEXT so arbitrarily large payloads fit.
	Data  string `json:"-" gorm:"type:text"`
	Email string `json:"email,omitempty" gorm:"size:255;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets a random id before creating the record.
func (t *StripeTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// DataMap parses the stored payload. Returns an empty map on malformed or
// missing data so callers can index it without guards.
func (t *StripeTransaction) DataMap() map[string]interface{} {
	raw := t.Data
	if raw == "" {
		raw = "{}"
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}

// ClientSecret extracts the client-side confirmation secret the SPA needs
// to drive the card-entry widget.
func (t *StripeTransaction) ClientSecret() string {
	if v, ok := t.DataMap()["client_secret"].(string); ok {
		return v
	}
	return ""
}

// PaymentIntentID extracts the provider-side intent id (usually "pi_...")
// needed to re-fetch the authoritative payment state.
func (t *StripeTransaction) PaymentIntentID() string {
	if v, ok := t.DataMap()["id"].(string); ok {
		return v
	}
	return ""
}
