package models

import (
	"fmt"
	"time"
)

// RoleProfile is the staff/manager extension of a User.
// A user holds at most one profile per role.
type RoleProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"not null;uniqueIndex:idx_role_profiles_user_role" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Role   string `gorm:"size:8;not null;uniqueIndex:idx_role_profiles_user_role" json:"role"`

	// Picture is an object key resolved by the media storage.
	Picture string `gorm:"size:255" json:"picture"`

	LastUpdate time.Time `gorm:"autoCreateTime" json:"last_update"`
}

func (p RoleProfile) String() string {
	if p.User == nil {
		return fmt.Sprintf("Employee #%d", p.UserID)
	}
	return "Employee " + p.User.Email
}
