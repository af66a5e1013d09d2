package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homegrove/estate/pkg/types"
)

func TestSubscriptionValid(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	var nilSub *Subscription
	assert.False(t, nilSub.Valid())

	assert.True(t, (&Subscription{Status: types.SubscriptionStatusActive, EndAt: future}).Valid())
	assert.False(t, (&Subscription{Status: types.SubscriptionStatusActive, EndAt: past}).Valid())
	assert.False(t, (&Subscription{Status: types.SubscriptionStatusExpired, EndAt: future}).Valid())
	assert.False(t, (&Subscription{Status: types.SubscriptionStatusCancelled, EndAt: future}).Valid())
}

func TestSubscriptionSnapshot(t *testing.T) {
	var nilSub *Subscription
	assert.Nil(t, nilSub.Snapshot())

	start := time.Now()
	end := start.AddDate(0, 3, 0)
	sub := &Subscription{
		ID:       "sub-1",
		PlanType: types.PlanTypeQuarterly,
		Status:   types.SubscriptionStatusActive,
		StartAt:  start,
		EndAt:    end,
		Amount:   8097,
	}

	snap := sub.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, "sub-1", snap.ID)
	assert.Equal(t, types.PlanTypeQuarterly, snap.PlanType)
	assert.Equal(t, end, snap.EndAt)
	assert.Equal(t, int64(8097), snap.Amount)
}
