package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/homegrove/estate/internal/models"
	types "github.com/homegrove/estate/pkg/types"
)

func TestComputePeriod_AllCases(t *testing.T) {
	now := time.Now()
	tenDays := 10 * 24 * time.Hour

	activePrior := &models.Subscription{
		Status: types.SubscriptionStatusActive,
		EndAt:  now.Add(tenDays),
	}
	expiredStatusPrior := &models.Subscription{
		Status: types.SubscriptionStatusExpired,
		EndAt:  now.Add(tenDays),
	}
	lapsedPrior := &models.Subscription{
		Status: types.SubscriptionStatusActive,
		EndAt:  now.Add(-tenDays),
	}

	tests := []struct {
		name      string
		prior     *models.Subscription
		months    int
		wantStart time.Time
		wantErr   bool
	}{
		{name: "no prior starts now", prior: nil, months: 3, wantStart: now},
		{name: "active prior chains from its end", prior: activePrior, months: 1, wantStart: activePrior.EndAt},
		{name: "expired status prior starts now", prior: expiredStatusPrior, months: 1, wantStart: now},
		{name: "lapsed prior starts now", prior: lapsedPrior, months: 12, wantStart: now},
		{name: "zero months rejected", prior: nil, months: 0, wantErr: true},
		{name: "negative months rejected", prior: nil, months: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePeriod(tt.prior, tt.months, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.StartAt)
			assert.Equal(t, tt.wantStart.AddDate(0, tt.months, 0), got.EndAt)
			assert.True(t, got.EndAt.After(got.StartAt))
		})
	}
}

func TestComputePeriod_CalendarMonthArithmetic(t *testing.T) {
	mar1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := ComputePeriod(nil, 3, mar1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got.EndAt)

	// Day-of-month overflow follows time.AddDate: Jan 31 + 1 month lands in
	// early March, not on Feb 29.
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	got, err = ComputePeriod(nil, 1, jan31)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), got.EndAt)
}

func TestComputePeriod_ConsecutivePeriodsDoNotOverlap(t *testing.T) {
	now := time.Now()
	first, err := ComputePeriod(nil, 1, now)
	require.NoError(t, err)

	prior := &models.Subscription{Status: types.SubscriptionStatusActive, EndAt: first.EndAt}
	second, err := ComputePeriod(prior, 3, now)
	require.NoError(t, err)

	assert.Equal(t, first.EndAt, second.StartAt)
}
