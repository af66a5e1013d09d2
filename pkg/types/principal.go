package types

import "fmt"

// Role is the account role. Each role authenticates through its own cookie
// but all of them share one token format and one verification path.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// CookieName returns the auth cookie name for the role.
func (r Role) CookieName() string {
	return fmt.Sprintf("%s_token", r)
}

// SubjectKind maps a role to the subject kind used on subscriptions and
// transactions. Only buyers and sellers own subscriptions.
func (r Role) SubjectKind() SubjectKind {
	if r == RoleSeller {
		return SubjectKindSeller
	}
	return SubjectKindUser
}

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	AccountID string `json:"account_id"`
	Role      Role   `json:"role"`
}
