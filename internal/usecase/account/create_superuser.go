package account

import (
	"context"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

type CreateSuperuser struct {
	createUser *CreateUser
	repo       domain.Repository
	audit      *audit.Dispatcher
}

func NewCreateSuperuser(
	createUser *CreateUser,
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSuperuser {
	return &CreateSuperuser{
		createUser: createUser,
		repo:       repo,
		audit:      audit,
	}
}

// Execute creates the user as usual, then promotes it to admin.
// Provisioning runs once, on the first insert.
func (uc *CreateSuperuser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	u, err := uc.createUser.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	u.IsAdmin = true
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "superuser_created",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
