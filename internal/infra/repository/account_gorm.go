package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(u).Error
	return translate(err, "email_already_exists")
}

func (r *AccountGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(u).Error
	return translate(err, "address_already_attached")
}

func (r *AccountGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Address").
		First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *AccountGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Mesmo sem FK ativa (sqlite), os perfis vão junto com o usuário.
		if err := tx.Where("user_id = ?", id).
			Delete(&models.RoleProfile{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.Missing("user_not_found")
		}
		return nil
	})
}

// --------------------------------------------------
// Role profile
// --------------------------------------------------

func (r *AccountGormRepository) CreateRoleProfile(
	ctx context.Context,
	p *models.RoleProfile,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(p).Error
	return translate(err, "role_profile_already_exists")
}

func (r *AccountGormRepository) GetRoleProfile(
	ctx context.Context,
	userID uint,
	role domain.Role,
) (*models.RoleProfile, error) {

	var p models.RoleProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND role = ?", userID, string(role)).
		First(&p).Error; err != nil {
		return nil, notFound(err, "role_profile_not_found")
	}
	return &p, nil
}

func (r *AccountGormRepository) ListRoleProfiles(
	ctx context.Context,
	userID uint,
) ([]models.RoleProfile, error) {

	var profiles []models.RoleProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("role ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *AccountGormRepository) UpdateRoleProfile(
	ctx context.Context,
	p *models.RoleProfile,
) error {
	// last_update fica com o valor da criação.
	return r.db.WithContext(ctx).
		Model(&models.RoleProfile{}).
		Where("id = ?", p.ID).
		Update("picture", p.Picture).Error
}

// --------------------------------------------------
// Address
// --------------------------------------------------

func (r *AccountGormRepository) CreateAddress(
	ctx context.Context,
	a *models.Address,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountGormRepository) GetAddress(
	ctx context.Context,
	id uint,
) (*models.Address, error) {

	var a models.Address
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err, "address_not_found")
	}
	return &a, nil
}

func (r *AccountGormRepository) DeleteAddress(
	ctx context.Context,
	id uint,
) ([]uint, error) {

	var detached []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("address_id = ?", id).
			Pluck("id", &detached).Error; err != nil {
			return err
		}

		if len(detached) > 0 {
			if err := tx.Model(&models.User{}).
				Where("id IN ?", detached).
				Update("address_id", nil).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Address{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.Missing("address_not_found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detached, nil
}

// --------------------------------------------------
// Errors
// --------------------------------------------------

func translate(err error, code string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return httperr.Unique(code)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.Missing(code)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
