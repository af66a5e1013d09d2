package models

import (
	"time"

	"github.com/homegrove/estate/pkg/types"
)

// SubscriptionPlan is catalog data. Read-mostly; seeded with defaults when
// the table is empty.
type SubscriptionPlan struct {
	ID             string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	PlanType       types.PlanType `gorm:"column:plan_type;type:varchar(16);not null;uniqueIndex" json:"plan_type"`
	Label          string         `gorm:"column:label;type:varchar(64);not null" json:"label"`
	MonthlyPrice   int64          `gorm:"column:monthly_price;type:bigint;not null" json:"monthly_price"`
	DurationMonths int            `gorm:"column:duration_months;not null" json:"duration_months"`
	TotalPrice     int64          `gorm:"column:total_price;type:bigint;not null" json:"total_price"`
	DiscountPct    int            `gorm:"column:discount_pct;not null" json:"discount_pct"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
