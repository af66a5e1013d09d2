package types

import "time"

// SubjectKind tells which kind of account a subscription or transaction
// belongs to.
type SubjectKind string

const (
	SubjectKindUser   SubjectKind = "user"
	SubjectKindSeller SubjectKind = "seller"
)

type PlanType string

const (
	PlanTypeMonthly   PlanType = "monthly"
	PlanTypeQuarterly PlanType = "quarterly"
	PlanTypeAnnually  PlanType = "annually"
)

// Months returns the plan duration in whole months, or 0 for an unknown plan.
func (p PlanType) Months() int {
	switch p {
	case PlanTypeMonthly:
		return 1
	case PlanTypeQuarterly:
		return 3
	case PlanTypeAnnually:
		return 12
	}
	return 0
}

func (p PlanType) Valid() bool {
	return p.Months() > 0
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodDemoCard PaymentMethod = "demo_card"
)

type SubscriptionChangeReason string

const (
	SubscriptionChangeReasonAssign      SubscriptionChangeReason = "assign"
	SubscriptionChangeReasonDemoPayment SubscriptionChangeReason = "demo_payment"
)

// SubscriptionSnapshot is the client-facing view of an active subscription.
// It is also what gets serialized into the seller_subscription cookie.
type SubscriptionSnapshot struct {
	ID       string             `json:"id"`
	PlanType PlanType           `json:"plan_type"`
	Status   SubscriptionStatus `json:"status"`
	StartAt  time.Time          `json:"start_at"`
	EndAt    time.Time          `json:"end_at"`
	Amount   int64              `json:"amount"`
}
