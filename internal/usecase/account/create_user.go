package account

import (
	"context"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/models"
	"github.com/BruksfildServices01/accounts-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Email    string
	UserType string

	// Nil leaves the account without a usable password.
	Password *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo        domain.Repository
	provisioner domain.Provisioner
	audit       *audit.Dispatcher

	checkDomain func(email string) bool
}

func NewCreateUser(
	repo domain.Repository,
	provisioner domain.Provisioner,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:        repo,
		provisioner: provisioner,
		audit:       audit,
	}
}

// WithEmailDomainCheck rejects emails whose domain fails check.
func (uc *CreateUser) WithEmailDomainCheck(check func(email string) bool) *CreateUser {
	uc.checkDomain = check
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

// Execute inserts the user and then provisions its role profile.
// A provisioning error is returned as is; the user row stays.
func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	email := validators.NormalizeEmail(in.Email)
	if email == "" {
		return nil, httperr.Validation("email_required")
	}

	userType, err := domain.ParseUserType(in.UserType)
	if err != nil {
		return nil, err
	}

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.Validation("invalid_email_domain")
	}

	// --------------------------------------------------
	// 2️⃣ Senha
	// --------------------------------------------------
	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		UserType:     string(userType),
		IsActive:     true,
		IsAdmin:      false,
	}

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"user_type": u.UserType},
	})

	// --------------------------------------------------
	// 4️⃣ Perfil do papel
	// --------------------------------------------------
	if uc.provisioner == nil {
		return u, nil
	}

	if err := uc.provisioner.Provision(ctx, u); err != nil {
		return nil, err
	}

	if role, ok := userType.ProfileRole(); ok {
		uc.audit.Dispatch(audit.Event{
			Action:   "role_profile_provisioned",
			Entity:   "user",
			EntityID: &u.ID,
			Metadata: map[string]string{"role": string(role)},
		})
	}

	return u, nil
}
