package model

import "github.com/shopspring/decimal"

// Plan id codes. Prices live exclusively in the subscription_plans table;
// no other code path may carry a price literal.
const (
	PlanSong    = "SONG"
	PlanMonthly = "MONTHLY"
	PlanAnnual  = "ANNUAL"
)

// SubscriptionPlan is a priced product code. The table is the authoritative
// source of truth for every amount charged by the system.
type SubscriptionPlan struct {
	ID          string          `json:"id" gorm:"primaryKey;size:32"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"size:255"`
}

// TableName keeps the original table name.
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// DefaultPlans returns the rows seeded when the table is empty.
func DefaultPlans() []SubscriptionPlan {
	return []SubscriptionPlan{
		{ID: PlanSong, Price: decimal.NewFromFloat(1.0), Description: "Single song payment"},
		{ID: PlanMonthly, Price: decimal.NewFromFloat(10.0), Description: "Monthly subscription"},
		{ID: PlanAnnual, Price: decimal.NewFromFloat(15.0), Description: "Annual subscription"},
	}
}
