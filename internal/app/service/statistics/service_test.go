package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatistics_UnknownDataItemFails(t *testing.T) {
	s := &Service{}

	// Two bad items exercise the fan-out error path; the error must surface
	// even with multiple workers reporting at once.
	_, err := s.GetStatistics(context.Background(), &StatisticRequest{
		DataItems: []*StatisticDataItem{
			{ID: StatisticType("bogus")},
			{ID: StatisticType("also_bogus")},
		},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid data item id")
}

func TestGetStatistics_EmptyRequest(t *testing.T) {
	s := &Service{}

	res, err := s.GetStatistics(context.Background(), &StatisticRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.DataItems)
}
