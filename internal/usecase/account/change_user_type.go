package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

// ChangeUserType retags a user. The profile for the new role is created
// when missing; profiles of previous roles are kept with their pictures.
type ChangeUserType struct {
	repo  domain.Repository
	cache domain.UserCache
	audit *audit.Dispatcher
}

func NewChangeUserType(
	repo domain.Repository,
	cache domain.UserCache,
	audit *audit.Dispatcher,
) *ChangeUserType {
	return &ChangeUserType{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *ChangeUserType) Execute(
	ctx context.Context,
	actorID uint,
	userID uint,
	newType string,
) (*models.User, error) {

	userType, err := domain.ParseUserType(newType)
	if err != nil {
		return nil, err
	}

	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := u.UserType
	if previous != string(userType) {
		u.UserType = string(userType)
		if err := uc.repo.UpdateUser(ctx, u); err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.Invalidate(ctx, u.ID)
		}
	}

	if role, ok := userType.ProfileRole(); ok {
		_, err := uc.repo.GetRoleProfile(ctx, u.ID, role)
		switch {
		case errors.Is(err, httperr.ErrNotFound):
			if err := uc.repo.CreateRoleProfile(ctx, &models.RoleProfile{
				UserID: u.ID,
				Role:   string(role),
			}); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, err
		}
	}

	if previous != u.UserType {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &actorID,
			Action:   "user_type_changed",
			Entity:   "user",
			EntityID: &u.ID,
			Metadata: map[string]string{"from": previous, "to": u.UserType},
		})
	}

	return u, nil
}
