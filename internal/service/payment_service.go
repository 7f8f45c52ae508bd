package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gramola/internal/cache"
	"gramola/internal/errors"
	"gramola/internal/model"
	"gramola/internal/repository"
)

const (
	plansCacheKey = "plans:list"
	plansCacheTTL = 5 * time.Minute
)

// DiagReport is the result of the Stripe connectivity check.
type DiagReport struct {
	StripeConfigured bool   `json:"stripeConfigured"`
	StripeOk         bool   `json:"stripeOk"`
	AccountID        string `json:"accountId,omitempty"`
	Error            string `json:"error,omitempty"`
}

// PaymentService handles plan lookup, payment-intent creation and
// transaction confirmation.
type PaymentService interface {
	SeedDefaultPlans(ctx context.Context) error
	GetAvailablePlans(ctx context.Context) ([]model.SubscriptionPlan, error)
	Prepay(ctx context.Context, planID string) (*model.StripeTransaction, error)
	ConfirmTransaction(ctx context.Context, tx *model.StripeTransaction, userTokenOrEmail string) (*model.User, error)
	FindTransaction(ctx context.Context, id string) (*model.StripeTransaction, error)
	Diagnose(ctx context.Context) DiagReport
}

type paymentService struct {
	planRepo repository.PlanRepository
	txRepo   repository.TransactionRepository
	userRepo repository.UserRepository
	cache    *cache.Client
	gateway  StripeGateway
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	planRepo repository.PlanRepository,
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
	gateway StripeGateway,
) PaymentService {
	return &paymentService{
		planRepo: planRepo,
		txRepo:   txRepo,
		userRepo: userRepo,
		cache:    cache,
		gateway:  gateway,
	}
}

// SeedDefaultPlans inserts the default plan rows when the table is empty,
// so prices live in the database instead of the code paths that charge them.
func (s *paymentService) SeedDefaultPlans(ctx context.Context) error {
	count, err := s.planRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count plans: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := s.planRepo.CreateBatch(ctx, model.DefaultPlans()); err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	log.Println("subscription plans seeded")
	return nil
}

// GetAvailablePlans returns the stored plans verbatim. This is the only
// source of prices for the client UI. The read-mostly list is cached.
func (s *paymentService) GetAvailablePlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	if raw, _ := s.cache.Get(ctx, plansCacheKey); raw != nil {
		var plans []model.SubscriptionPlan
		if err := json.Unmarshal(raw, &plans); err == nil {
			return plans, nil
		}
	}

	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	if raw, err := json.Marshal(plans); err == nil {
		_ = s.cache.Set(ctx, plansCacheKey, raw, plansCacheTTL)
	}
	return plans, nil
}

// Prepay creates a provider-side payment intent for the plan's current
// price and stores the full provider payload under a fresh local id. The
// returned record embeds the client_secret the SPA needs for the card
// widget.
func (s *paymentService) Prepay(ctx context.Context, planID string) (*model.StripeTransaction, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}

	// Stripe amounts are integer minor currency units (1.00 EUR = 100).
	amountCents := plan.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	intent, err := s.gateway.CreatePaymentIntent(amountCents, "eur", plan.Description)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	payload, err := json.Marshal(intent)
	if err != nil {
		return nil, fmt.Errorf("marshal payment intent: %w", err)
	}

	tx := &model.StripeTransaction{Data: string(payload)}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("store transaction: %w", err)
	}
	return tx, nil
}

// ConfirmTransaction re-fetches the authoritative payment-intent state from
// the provider, resolves the paying identity and claims the transaction for
// that email. Client-asserted success is never trusted. A transaction that
// was already confirmed (by this or a racing request) is observed as such:
// the stored owner is returned and no state changes.
func (s *paymentService) ConfirmTransaction(ctx context.Context, tx *model.StripeTransaction, userTokenOrEmail string) (*model.User, error) {
	if tx.Email != "" {
		return s.ownerOf(ctx, tx.Email)
	}

	intentID := tx.PaymentIntentID()
	if intentID == "" {
		return nil, errors.ErrMissingPaymentIntent
	}

	intent, err := s.gateway.GetPaymentIntent(intentID)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}

	status := string(intent.Status)
	if !strings.EqualFold(status, "succeeded") && !strings.EqualFold(status, "requires_capture") {
		return nil, fmt.Errorf("%w: provider status %q", errors.ErrPaymentIncomplete, status)
	}

	email := s.resolveEmail(ctx, userTokenOrEmail)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.ErrUnresolvedIdentity
	}

	payload, err := json.Marshal(intent)
	if err != nil {
		return nil, fmt.Errorf("marshal payment intent: %w", err)
	}

	claimed, err := s.txRepo.ClaimForOwner(ctx, tx.ID, email, string(payload))
	if err != nil {
		return nil, fmt.Errorf("claim transaction: %w", err)
	}
	if !claimed {
		// A concurrent confirmation won the conditional update. Reload and
		// answer with the recorded owner.
		stored, err := s.txRepo.FindByID(ctx, tx.ID)
		if err != nil {
			return nil, fmt.Errorf("reload transaction: %w", err)
		}
		return s.ownerOf(ctx, stored.Email)
	}
	tx.Data = string(payload)
	tx.Email = email

	log.Printf("payment confirmed: user=%s amount=%.2f", email, float64(intent.Amount)/100)
	return s.ownerOf(ctx, email)
}

// ownerOf loads the user record behind a confirmed transaction. A missing
// row is a consistency fault: the user who obtained the token should exist.
func (s *paymentService) ownerOf(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// resolveEmail maps the caller-supplied identifier to an email. Anything
// containing "@" is taken as an email directly; otherwise it is treated as
// a confirmation-token id and the owning user is looked up.
func (s *paymentService) resolveEmail(ctx context.Context, tokenOrEmail string) string {
	if tokenOrEmail == "" {
		return ""
	}
	if strings.Contains(tokenOrEmail, "@") {
		return tokenOrEmail
	}
	user, err := s.userRepo.FindByCreationTokenID(ctx, tokenOrEmail)
	if err != nil {
		return ""
	}
	return user.Email
}

// FindTransaction returns nil, nil when the id was never registered here;
// callers turn that into a client error.
func (s *paymentService) FindTransaction(ctx context.Context, id string) (*model.StripeTransaction, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return tx, nil
}

// Diagnose checks that the Stripe key is loaded and the account reachable.
func (s *paymentService) Diagnose(ctx context.Context) DiagReport {
	report := DiagReport{StripeConfigured: s.gateway.Configured()}
	acct, err := s.gateway.GetAccount()
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.StripeOk = true
	report.AccountID = acct.ID
	return report
}
