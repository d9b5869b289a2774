package account

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/models"
	"github.com/BruksfildServices01/accounts-api/internal/validators"
)

const CodeInvalidCredentials = "invalid_credentials"

type Authenticate struct {
	repo  domain.Repository
	cache domain.UserCache
	audit *audit.Dispatcher
}

func NewAuthenticate(
	repo domain.Repository,
	cache domain.UserCache,
	audit *audit.Dispatcher,
) *Authenticate {
	return &Authenticate{repo: repo, cache: cache, audit: audit}
}

// Execute checks the credentials of an active user and stamps last_login.
// Unknown email, wrong or unusable password and inactive account all
// fail with the same code.
func (uc *Authenticate) Execute(ctx context.Context, email, password string) (*models.User, error) {
	u, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			return nil, httperr.ErrBusiness(CodeInvalidCredentials)
		}
		return nil, err
	}

	if !u.IsActive || !domain.CheckPassword(u.PasswordHash, password) {
		return nil, httperr.ErrBusiness(CodeInvalidCredentials)
	}

	now := time.Now()
	u.LastLogin = &now
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, u.ID)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &u.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
