package account

import (
	"context"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateAddress struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAddress(repo domain.Repository, audit *audit.Dispatcher) *CreateAddress {
	return &CreateAddress{repo: repo, audit: audit}
}

func (uc *CreateAddress) Execute(ctx context.Context, actorID uint, a *models.Address) (*models.Address, error) {
	if err := domain.ValidateAddress(a); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAddress(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "address_created",
		Entity:   "address",
		EntityID: &a.ID,
	})

	return a, nil
}

// ======================================================
// ATTACH
// ======================================================

type AttachAddress struct {
	repo  domain.Repository
	cache domain.UserCache
	audit *audit.Dispatcher
}

func NewAttachAddress(
	repo domain.Repository,
	cache domain.UserCache,
	audit *audit.Dispatcher,
) *AttachAddress {
	return &AttachAddress{repo: repo, cache: cache, audit: audit}
}

// Execute links the address to the user. An address already linked to
// another user is a unique violation.
func (uc *AttachAddress) Execute(ctx context.Context, userID, addressID uint) (*models.User, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	a, err := uc.repo.GetAddress(ctx, addressID)
	if err != nil {
		return nil, err
	}

	u.AddressID = &a.ID
	u.Address = a
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, u.ID)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &u.ID,
		Action:   "address_attached",
		Entity:   "address",
		EntityID: &a.ID,
	})

	return u, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteAddress struct {
	repo  domain.Repository
	cache domain.UserCache
	audit *audit.Dispatcher
}

func NewDeleteAddress(
	repo domain.Repository,
	cache domain.UserCache,
	audit *audit.Dispatcher,
) *DeleteAddress {
	return &DeleteAddress{repo: repo, cache: cache, audit: audit}
}

// Execute removes the address; users pointing at it keep existing
// without an address.
func (uc *DeleteAddress) Execute(ctx context.Context, actorID, addressID uint) error {
	detached, err := uc.repo.DeleteAddress(ctx, addressID)
	if err != nil {
		return err
	}

	if uc.cache != nil {
		for _, id := range detached {
			uc.cache.Invalidate(ctx, id)
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "address_deleted",
		Entity:   "address",
		EntityID: &addressID,
		Metadata: map[string]any{"detached_users": detached},
	})

	return nil
}
