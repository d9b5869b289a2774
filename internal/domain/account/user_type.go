package account

import "github.com/BruksfildServices01/accounts-api/internal/httperr"

// ===============================
// User Type
// ===============================

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeManager  UserType = "manager"
	UserTypeStaff    UserType = "staff"
)

// ===============================
// Role Profile
// ===============================

type Role string

const (
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeCustomer, UserTypeManager, UserTypeStaff:
		return true
	}
	return false
}

// ProfileRole returns the role profile a user of this type gets.
// Customers get none.
func (t UserType) ProfileRole() (Role, bool) {
	switch t {
	case UserTypeManager:
		return RoleManager, true
	case UserTypeStaff:
		return RoleStaff, true
	}
	return "", false
}

func ParseUserType(s string) (UserType, error) {
	t := UserType(s)
	if !t.Valid() {
		return "", httperr.Validation("invalid_user_type")
	}
	return t, nil
}

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleManager, RoleStaff:
		return r, nil
	}
	return "", httperr.Validation("invalid_role")
}
