package account

import (
	"context"

	"github.com/BruksfildServices01/accounts-api/internal/models"
)

type Repository interface {
	// -------- User --------
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	UpdateUser(
		ctx context.Context,
		u *models.User,
	) error

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// DeleteUser removes the user and its role profiles.
	DeleteUser(
		ctx context.Context,
		id uint,
	) error

	// -------- Role profile --------
	CreateRoleProfile(
		ctx context.Context,
		p *models.RoleProfile,
	) error

	GetRoleProfile(
		ctx context.Context,
		userID uint,
		role Role,
	) (*models.RoleProfile, error)

	ListRoleProfiles(
		ctx context.Context,
		userID uint,
	) ([]models.RoleProfile, error)

	UpdateRoleProfile(
		ctx context.Context,
		p *models.RoleProfile,
	) error

	// -------- Address --------
	CreateAddress(
		ctx context.Context,
		a *models.Address,
	) error

	GetAddress(
		ctx context.Context,
		id uint,
	) (*models.Address, error)

	// DeleteAddress detaches any user pointing at the address
	// and returns the ids of those users.
	DeleteAddress(
		ctx context.Context,
		id uint,
	) ([]uint, error)
}

// UserCache is an optional read-through cache for user lookups.
type UserCache interface {
	Get(ctx context.Context, id uint) (*models.User, bool)
	Set(ctx context.Context, u *models.User)
	Invalidate(ctx context.Context, id uint)
}

// PictureStore persists encoded profile pictures under a key.
type PictureStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(key string) string
}
