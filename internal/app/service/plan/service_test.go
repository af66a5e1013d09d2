package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/homegrove/estate/pkg/types"
)

func TestDefaultPlans_DerivedFields(t *testing.T) {
	plans := defaultPlans()
	require.Len(t, plans, 3)

	byType := map[types.PlanType]int{}
	for i, p := range plans {
		byType[p.PlanType] = i
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, p.PlanType.Months(), p.DurationMonths)
		assert.Equal(t, p.MonthlyPrice*int64(p.DurationMonths), p.TotalPrice)
	}

	monthly := plans[byType[types.PlanTypeMonthly]]
	assert.Equal(t, int64(2999), monthly.TotalPrice)
	assert.Equal(t, 0, monthly.DiscountPct)

	quarterly := plans[byType[types.PlanTypeQuarterly]]
	assert.Equal(t, int64(8097), quarterly.TotalPrice)
	assert.Equal(t, 10, quarterly.DiscountPct)

	annually := plans[byType[types.PlanTypeAnnually]]
	assert.Equal(t, int64(26988), annually.TotalPrice)
	assert.Equal(t, 25, annually.DiscountPct)
}
