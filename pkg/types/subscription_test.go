package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanTypeMonths(t *testing.T) {
	assert.Equal(t, 1, PlanTypeMonthly.Months())
	assert.Equal(t, 3, PlanTypeQuarterly.Months())
	assert.Equal(t, 12, PlanTypeAnnually.Months())
	assert.Equal(t, 0, PlanType("weekly").Months())
}

func TestPlanTypeValid(t *testing.T) {
	assert.True(t, PlanTypeMonthly.Valid())
	assert.False(t, PlanType("").Valid())
}

func TestRoleCookieName(t *testing.T) {
	assert.Equal(t, "buyer_token", RoleBuyer.CookieName())
	assert.Equal(t, "seller_token", RoleSeller.CookieName())
	assert.Equal(t, "staff_token", RoleStaff.CookieName())
	assert.Equal(t, "admin_token", RoleAdmin.CookieName())
}

func TestRoleSubjectKind(t *testing.T) {
	assert.Equal(t, SubjectKindSeller, RoleSeller.SubjectKind())
	assert.Equal(t, SubjectKindUser, RoleBuyer.SubjectKind())
	assert.Equal(t, SubjectKindUser, RoleStaff.SubjectKind())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("tenant").Valid())
}
