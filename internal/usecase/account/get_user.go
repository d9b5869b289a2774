package account

import (
	"context"

	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

type GetUser struct {
	repo  domain.Repository
	cache domain.UserCache
}

// NewGetUser accepts a nil cache.
func NewGetUser(repo domain.Repository, cache domain.UserCache) *GetUser {
	return &GetUser{repo: repo, cache: cache}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	if uc.cache != nil {
		if u, ok := uc.cache.Get(ctx, id); ok {
			return u, nil
		}
	}

	u, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, u)
	}
	return u, nil
}

// ======================================================
// PROFILES
// ======================================================

type ProfileView struct {
	models.RoleProfile
	PictureURL string `json:"picture_url,omitempty"`
}

type ListRoleProfiles struct {
	repo  domain.Repository
	store domain.PictureStore
}

// NewListRoleProfiles accepts a nil store; picture URLs are then left empty.
func NewListRoleProfiles(repo domain.Repository, store domain.PictureStore) *ListRoleProfiles {
	return &ListRoleProfiles{repo: repo, store: store}
}

func (uc *ListRoleProfiles) Execute(ctx context.Context, userID uint) ([]ProfileView, error) {
	profiles, err := uc.repo.ListRoleProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ProfileView, 0, len(profiles))
	for _, p := range profiles {
		v := ProfileView{RoleProfile: p}
		if uc.store != nil {
			v.PictureURL = uc.store.URL(p.Picture)
		}
		out = append(out, v)
	}
	return out, nil
}
