package account

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/media"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

type UploadProfilePicture struct {
	repo    domain.Repository
	store   domain.PictureStore
	audit   *audit.Dispatcher
	maxSide int
}

func NewUploadProfilePicture(
	repo domain.Repository,
	store domain.PictureStore,
	audit *audit.Dispatcher,
	maxSide int,
) *UploadProfilePicture {
	return &UploadProfilePicture{
		repo:    repo,
		store:   store,
		audit:   audit,
		maxSide: maxSide,
	}
}

// Execute stores the picture and points the profile at it.
// last_update is not touched.
func (uc *UploadProfilePicture) Execute(
	ctx context.Context,
	userID uint,
	roleName string,
	picture io.Reader,
) (*models.RoleProfile, error) {

	role, err := domain.ParseRole(roleName)
	if err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetRoleProfile(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	data, err := media.EncodePicture(picture, uc.maxSide)
	if err != nil {
		return nil, httperr.Validation("invalid_picture")
	}

	key := fmt.Sprintf("profiles/%s/%d/%s.webp", role, userID, uuid.NewString())
	if err := uc.store.Put(ctx, key, data, media.PictureContentType); err != nil {
		return nil, err
	}

	profile.Picture = key
	if err := uc.repo.UpdateRoleProfile(ctx, profile); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "profile_picture_updated",
		Entity:   "role_profile",
		EntityID: &profile.ID,
	})

	return profile, nil
}
