package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homegrove/estate/pkg/types"
)

func TestMaker_SignAndVerify(t *testing.T) {
	m := NewMaker("test-secret", time.Hour)

	signed, err := m.Sign(types.Principal{AccountID: "acct-1", Role: types.RoleSeller})
	require.NoError(t, err)

	p, err := m.Verify(signed, types.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", p.AccountID)
	assert.Equal(t, types.RoleSeller, p.Role)
}

func TestMaker_VerifyRejectsWrongRole(t *testing.T) {
	m := NewMaker("test-secret", time.Hour)

	// A seller token presented on a staff check must fail even though the
	// signature is valid.
	signed, err := m.Sign(types.Principal{AccountID: "acct-1", Role: types.RoleSeller})
	require.NoError(t, err)

	_, err = m.Verify(signed, types.RoleStaff)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMaker_VerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewMaker("secret-a", time.Hour).Sign(types.Principal{AccountID: "acct-1", Role: types.RoleAdmin})
	require.NoError(t, err)

	_, err = NewMaker("secret-b", time.Hour).Verify(signed, types.RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMaker_VerifyRejectsExpiredToken(t *testing.T) {
	m := NewMaker("test-secret", -time.Hour)

	signed, err := m.Sign(types.Principal{AccountID: "acct-1", Role: types.RoleBuyer})
	require.NoError(t, err)

	_, err = m.Verify(signed, types.RoleBuyer)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMaker_VerifyRejectsGarbage(t *testing.T) {
	m := NewMaker("test-secret", time.Hour)
	_, err := m.Verify("not-a-jwt", types.RoleBuyer)
	require.ErrorIs(t, err, ErrInvalidToken)
}
