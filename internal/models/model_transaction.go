package models

import (
	"time"

	"github.com/homegrove/estate/pkg/types"
)

// Transaction is an immutable record of a payment attempt. Once the status is
// terminal (success or failed) the row is only ever touched to attach the
// subscription id it funded, inside the same database transaction that
// created the subscription.
type Transaction struct {
	ID          string                  `gorm:"column:id;type:uuid;primary_key;index:idx_tx_subject_id,priority:2,sort:desc" json:"id"`
	SubjectID   string                  `gorm:"column:subject_id;type:varchar(64);not null;index:idx_tx_subject_id,priority:1" json:"subject_id"`
	SubjectKind types.SubjectKind       `gorm:"column:subject_kind;type:varchar(16);not null" json:"subject_kind"`
	Amount      int64                   `gorm:"column:amount;type:bigint;not null" json:"amount"`
	Currency    string                  `gorm:"column:currency;type:varchar(8);not null" json:"currency"`
	Status      types.TransactionStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Method      types.PaymentMethod     `gorm:"column:method;type:varchar(32);not null" json:"method"`
	// CardLast4 holds only the last four digits of the card. Full card data is
	// never accepted, stored, or logged.
	CardLast4      string         `gorm:"column:card_last4;type:varchar(4)" json:"card_last4"`
	PlanType       types.PlanType `gorm:"column:plan_type;type:varchar(16);not null" json:"plan_type"`
	DurationMonths int            `gorm:"column:duration_months;not null" json:"duration_months"`
	// SubscriptionID is set when the transaction succeeded and funded a
	// subscription period.
	SubscriptionID *string   `gorm:"column:subscription_id;type:uuid" json:"subscription_id"`
	FailureReason  *string   `gorm:"column:failure_reason;type:varchar(255)" json:"failure_reason"`
	StaffNote      *string   `gorm:"column:staff_note;type:varchar(255)" json:"staff_note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) Succeeded() bool {
	return t != nil && t.Status == types.TransactionStatusSuccess
}
