package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/homegrove/estate/pkg/types"
)

func TestProcessDemoPayment_RejectsMalformedLast4(t *testing.T) {
	s := &Service{}

	for _, last4 := range []string{"", "111", "11111", "11a1", "one1", "1 11"} {
		_, err := s.ProcessDemoPayment(context.Background(), &DemoPaymentRequest{
			SubjectID:   "seller-1",
			SubjectKind: types.SubjectKindSeller,
			PlanType:    types.PlanTypeMonthly,
			Last4Digits: last4,
		})
		require.ErrorIs(t, err, ErrInvalidLast4, "last4 %q", last4)
	}
}

func TestRecordPaymentFailure_RequiresReason(t *testing.T) {
	s := &Service{}

	_, err := s.RecordPaymentFailure(context.Background(), &PaymentFailureRequest{
		SubjectID:   "seller-1",
		SubjectKind: types.SubjectKindSeller,
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestProcessDemoPayment_RequiresSubjectID(t *testing.T) {
	s := &Service{}

	_, err := s.ProcessDemoPayment(context.Background(), &DemoPaymentRequest{
		SubjectKind: types.SubjectKindSeller,
		PlanType:    types.PlanTypeMonthly,
		Last4Digits: "1111",
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("1111"))
	assert.True(t, isDigits("0042"))
	assert.False(t, isDigits("12a4"))
	assert.False(t, isDigits("12 4"))
	assert.False(t, isDigits("١٢٣٤"))
}

func TestRoleForKind(t *testing.T) {
	assert.Equal(t, types.RoleSeller, roleForKind(types.SubjectKindSeller))
	assert.Equal(t, types.RoleBuyer, roleForKind(types.SubjectKindUser))
}
