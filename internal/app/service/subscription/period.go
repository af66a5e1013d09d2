package subscription

import (
	"fmt"
	"time"

	"github.com/homegrove/estate/internal/models"
)

// Period is the validity window of one subscription.
type Period struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// ComputePeriod calculates the validity window of the next subscription
// period for a subject.
//
// If the subject holds an active subscription whose end is still in the
// future, the new period starts exactly where it ends, so consecutive
// periods chain with no gap and no overlap. Otherwise the new period starts
// at now. The end advances by whole calendar months; day-of-month shifts at
// month-end boundaries follow time.AddDate semantics.
func ComputePeriod(prior *models.Subscription, months int, now time.Time) (Period, error) {
	if months <= 0 {
		return Period{}, fmt.Errorf("invalid duration: %d months", months)
	}

	start := now
	if prior != nil && prior.Valid() && prior.EndAt.After(now) {
		start = prior.EndAt
	}

	return Period{StartAt: start, EndAt: start.AddDate(0, months, 0)}, nil
}
