package account

import (
	"context"

	"github.com/BruksfildServices01/accounts-api/internal/models"
)

// Provisioner runs right after a user's first insert.
type Provisioner interface {
	Provision(ctx context.Context, u *models.User) error
}

// ProvisionerFunc adapts a function to Provisioner.
type ProvisionerFunc func(ctx context.Context, u *models.User) error

func (f ProvisionerFunc) Provision(ctx context.Context, u *models.User) error {
	return f(ctx, u)
}

// RoleProfileProvisioner creates the role profile matching the user type.
// It does not check for an existing profile: a second call for the same
// user fails with the store's unique violation.
type RoleProfileProvisioner struct {
	repo Repository
}

func NewRoleProfileProvisioner(repo Repository) *RoleProfileProvisioner {
	return &RoleProfileProvisioner{repo: repo}
}

func (p *RoleProfileProvisioner) Provision(ctx context.Context, u *models.User) error {
	role, ok := UserType(u.UserType).ProfileRole()
	if !ok {
		return nil
	}

	return p.repo.CreateRoleProfile(ctx, &models.RoleProfile{
		UserID: u.ID,
		Role:   string(role),
	})
}
