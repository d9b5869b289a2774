package account

import (
	"context"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
)

type DeleteUser struct {
	repo  domain.Repository
	cache domain.UserCache
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	cache domain.UserCache,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{repo: repo, cache: cache, audit: audit}
}

func (uc *DeleteUser) Execute(ctx context.Context, actorID, userID uint) error {
	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, userID)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &userID,
	})

	return nil
}
