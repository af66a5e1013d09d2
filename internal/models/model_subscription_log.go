package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/homegrove/estate/pkg/types"
)

// SubscriptionLog is an append-only audit record of subscription changes,
// storing before/after snapshots.
type SubscriptionLog struct {
	ID          string                            `gorm:"column:id;type:uuid;primary_key" json:"id"`
	SubjectID   string                            `gorm:"column:subject_id;type:varchar(64);not null;index" json:"subject_id"`
	SubjectKind types.SubjectKind                 `gorm:"column:subject_kind;type:varchar(16);not null" json:"subject_kind"`
	Reason      types.SubscriptionChangeReason    `gorm:"column:reason;type:varchar(32);not null" json:"reason"`
	Before      datatypes.JSONType[*Subscription] `gorm:"column:before;type:jsonb" json:"before"`
	After       datatypes.JSONType[*Subscription] `gorm:"column:after;type:jsonb" json:"after"`
	Extra       datatypes.JSONMap                 `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt   time.Time                         `json:"created_at"`
}

func (SubscriptionLog) TableName() string {
	return "subscription_logs"
}
