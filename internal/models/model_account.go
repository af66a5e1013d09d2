package models

import (
	"time"

	"github.com/homegrove/estate/pkg/types"
)

// Account covers all four roles. Email is unique per role, matching the four
// separate login domains the client presents.
type Account struct {
	ID           string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Role         types.Role `gorm:"column:role;type:varchar(16);not null;uniqueIndex:uq_role_email,priority:1" json:"role"`
	Name         string     `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_role_email,priority:2" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	Phone        string     `gorm:"column:phone;type:varchar(32)" json:"phone"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountView is the serialization type for accounts. It structurally cannot
// carry the password hash.
type AccountView struct {
	ID        string     `json:"id"`
	Role      types.Role `json:"role"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
}

func (a *Account) View() *AccountView {
	if a == nil {
		return nil
	}
	return &AccountView{
		ID:        a.ID,
		Role:      a.Role,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}
