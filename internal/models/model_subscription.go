package models

import (
	"time"

	"github.com/homegrove/estate/pkg/types"
)

// Subscription is one paid access period for a subject. Periods chain: a new
// subscription starts where the prior active one ends.
// Use Valid() to determine whether the subscription currently grants access.
type Subscription struct {
	ID          string                   `gorm:"column:id;type:uuid;primary_key" json:"id"`
	SubjectID   string                   `gorm:"column:subject_id;type:varchar(64);not null;index:idx_subject,priority:1" json:"subject_id"`
	SubjectKind types.SubjectKind        `gorm:"column:subject_kind;type:varchar(16);not null;index:idx_subject,priority:2" json:"subject_kind"`
	PlanType    types.PlanType           `gorm:"column:plan_type;type:varchar(16);not null" json:"plan_type"`
	Status      types.SubscriptionStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	StartAt     time.Time                `gorm:"column:start_at;not null" json:"start_at"`
	// EndAt is strictly after StartAt.
	EndAt  time.Time `gorm:"column:end_at;not null" json:"end_at"`
	Amount int64     `gorm:"column:amount;type:bigint;not null" json:"amount"`
	// TransactionID references the transaction that funded this period.
	TransactionID *string   `gorm:"column:transaction_id;type:uuid" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) Valid() bool {
	return s != nil &&
		s.Status == types.SubscriptionStatusActive &&
		s.EndAt.After(time.Now())
}

func (s *Subscription) Snapshot() *types.SubscriptionSnapshot {
	if s == nil {
		return nil
	}
	return &types.SubscriptionSnapshot{
		ID:       s.ID,
		PlanType: s.PlanType,
		Status:   s.Status,
		StartAt:  s.StartAt,
		EndAt:    s.EndAt,
		Amount:   s.Amount,
	}
}
