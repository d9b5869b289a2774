package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	UserType     string `gorm:"size:8;not null" json:"user_type"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`
	IsAdmin  bool `gorm:"not null;default:false" json:"is_admin"`

	// Um endereço pertence a no máximo um usuário.
	AddressID *uint    `gorm:"uniqueIndex" json:"address_id"`
	Address   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"address,omitempty"`

	LastLogin *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStaff is derived: every admin is staff.
func (u *User) IsStaff() bool {
	return u.IsAdmin
}

// HasPerm always grants. Real policy lives outside this package.
func (u *User) HasPerm(perm string, target any) bool {
	return true
}

func (u *User) HasModulePerms(appLabel string) bool {
	return true
}

func (u *User) String() string {
	return u.Email
}
