package service

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/account"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeGateway abstracts the Stripe SDK so the payment service can be
// exercised without network access.
type StripeGateway interface {
	CreatePaymentIntent(amountCents int64, currency, description string) (*stripe.PaymentIntent, error)
	GetPaymentIntent(id string) (*stripe.PaymentIntent, error)
	GetAccount() (*stripe.Account, error)
	Configured() bool
}

type stripeGateway struct {
	key string
}

// NewStripeGateway configures the Stripe SDK with the given secret key and
// returns a gateway bound to it. The key arrives through config rather than
// being read from the environment at call sites.
func NewStripeGateway(secretKey string) StripeGateway {
	stripe.Key = secretKey
	return &stripeGateway{key: secretKey}
}

func (g *stripeGateway) Configured() bool {
	return g.key != ""
}

func (g *stripeGateway) CreatePaymentIntent(amountCents int64, currency, description string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	return paymentintent.New(params)
}

func (g *stripeGateway) GetPaymentIntent(id string) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, nil)
}

func (g *stripeGateway) GetAccount() (*stripe.Account, error) {
	return account.Get()
}
