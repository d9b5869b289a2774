package account

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/infra/repository"
	"github.com/BruksfildServices01/accounts-api/internal/models"
	"github.com/BruksfildServices01/accounts-api/internal/testutil"
)

type fixture struct {
	db   *gorm.DB
	repo *repository.AccountGormRepository

	createUser      *CreateUser
	createSuperuser *CreateSuperuser
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	testutil.FastPasswords(t)

	db := testutil.OpenTestDB(t)
	repo := repository.NewAccountGormRepository(db)
	createUser := NewCreateUser(repo, domain.NewRoleProfileProvisioner(repo), nil)

	return &fixture{
		db:              db,
		repo:            repo,
		createUser:      createUser,
		createSuperuser: NewCreateSuperuser(createUser, repo, nil),
	}
}

func (f *fixture) count(t *testing.T, model any, where ...any) int64 {
	t.Helper()
	q := f.db.Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestCreateUser_NormalizesEmail(t *testing.T) {
	f := newFixture(t)

	u, err := f.createUser.Execute(context.Background(), CreateUserInput{
		Email:    "  Maria.Silva@EXAMPLE.com ",
		UserType: "customer",
		Password: testutil.Ptr("s3cret!"),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Email != "Maria.Silva@example.com" {
		t.Fatalf("email = %q", u.Email)
	}
	if !u.IsActive || u.IsAdmin || u.IsStaff() {
		t.Fatalf("unexpected flags: %+v", u)
	}

	stored, err := f.repo.GetUserByEmail(context.Background(), "Maria.Silva@example.com")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.PasswordHash == "s3cret!" || !domain.CheckPassword(stored.PasswordHash, "s3cret!") {
		t.Fatalf("password not hashed correctly")
	}
	if n := f.count(t, &models.User{}); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestCreateUser_EmptyEmail(t *testing.T) {
	f := newFixture(t)

	for _, email := range []string{"", "   "} {
		_, err := f.createUser.Execute(context.Background(), CreateUserInput{Email: email, UserType: "customer"})
		if !errors.Is(err, httperr.ErrValidation) {
			t.Fatalf("email %q: expected validation error, got %v", email, err)
		}
	}
	if n := f.count(t, &models.User{}); n != 0 {
		t.Fatalf("expected no users, got %d", n)
	}
}

func TestCreateUser_InvalidUserType(t *testing.T) {
	f := newFixture(t)

	_, err := f.createUser.Execute(context.Background(), CreateUserInput{Email: "x@example.com", UserType: "owner"})
	if !errors.Is(err, httperr.ErrValidation) || !httperr.IsBusiness(err, "invalid_user_type") {
		t.Fatalf("expected invalid_user_type, got %v", err)
	}
	if n := f.count(t, &models.User{}); n != 0 {
		t.Fatalf("expected no users, got %d", n)
	}
}

func TestCreateUser_ProvisionsRoleProfile(t *testing.T) {
	tests := []struct {
		email       string
		userType    string
		wantManager int64
		wantStaff   int64
	}{
		{"a@x.com", "manager", 1, 0},
		{"b@x.com", "staff", 0, 1},
		{"c@x.com", "customer", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.userType, func(t *testing.T) {
			f := newFixture(t)

			u, err := f.createUser.Execute(context.Background(), CreateUserInput{Email: tt.email, UserType: tt.userType})
			if err != nil {
				t.Fatalf("CreateUser: %v", err)
			}

			if n := f.count(t, &models.User{}); n != 1 {
				t.Fatalf("expected 1 user, got %d", n)
			}
			if n := f.count(t, &models.RoleProfile{}, "user_id = ? AND role = ?", u.ID, "manager"); n != tt.wantManager {
				t.Fatalf("manager profiles = %d, want %d", n, tt.wantManager)
			}
			if n := f.count(t, &models.RoleProfile{}, "user_id = ? AND role = ?", u.ID, "staff"); n != tt.wantStaff {
				t.Fatalf("staff profiles = %d, want %d", n, tt.wantStaff)
			}
			if n := f.count(t, &models.RoleProfile{}); n != tt.wantManager+tt.wantStaff {
				t.Fatalf("unexpected total profiles %d", n)
			}
		})
	}
}

func TestCreateUser_WithoutPasswordIsUnusable(t *testing.T) {
	f := newFixture(t)

	u, err := f.createUser.Execute(context.Background(), CreateUserInput{Email: "nopass@example.com", UserType: "customer"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if domain.HasUsablePassword(u.PasswordHash) {
		t.Fatalf("expected unusable password, got %q", u.PasswordHash)
	}
	if domain.CheckPassword(u.PasswordHash, "") || domain.CheckPassword(u.PasswordHash, u.PasswordHash) {
		t.Fatalf("unusable password must never match")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.createUser.Execute(ctx, CreateUserInput{Email: "dup@example.com", UserType: "manager"}); err != nil {
		t.Fatalf("first: %v", err)
	}

	// Domain casing is normalized before the unique check.
	_, err := f.createUser.Execute(ctx, CreateUserInput{Email: "dup@EXAMPLE.com", UserType: "staff"})
	if !errors.Is(err, httperr.ErrUniqueViolation) {
		t.Fatalf("expected unique violation, got %v", err)
	}

	if n := f.count(t, &models.User{}); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
	if n := f.count(t, &models.RoleProfile{}); n != 1 {
		t.Fatalf("expected only the first user's profile, got %d", n)
	}
	if n := f.count(t, &models.RoleProfile{}, "role = ?", "staff"); n != 0 {
		t.Fatalf("no staff profile expected, got %d", n)
	}
}

func TestCreateUser_EmailDomainCheck(t *testing.T) {
	f := newFixture(t)
	f.createUser.WithEmailDomainCheck(func(email string) bool { return email != "a@bad.invalid" })

	_, err := f.createUser.Execute(context.Background(), CreateUserInput{Email: "a@BAD.invalid", UserType: "customer"})
	if !httperr.IsBusiness(err, "invalid_email_domain") {
		t.Fatalf("expected invalid_email_domain, got %v", err)
	}
	if _, err := f.createUser.Execute(context.Background(), CreateUserInput{Email: "a@good.com", UserType: "customer"}); err != nil {
		t.Fatalf("good domain: %v", err)
	}
}

func TestProvisioning_SecondRunFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.createUser.Execute(ctx, CreateUserInput{Email: "m@example.com", UserType: "manager"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	err = domain.NewRoleProfileProvisioner(f.repo).Provision(ctx, u)
	if !errors.Is(err, httperr.ErrUniqueViolation) {
		t.Fatalf("expected unique violation on second provisioning, got %v", err)
	}
	if n := f.count(t, &models.RoleProfile{}, "user_id = ?", u.ID); n != 1 {
		t.Fatalf("expected 1 profile, got %d", n)
	}
}

func TestCreateUser_ProvisioningFailurePropagates(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("media layer down")
	uc := NewCreateUser(f.repo, domain.ProvisionerFunc(func(ctx context.Context, u *models.User) error {
		return boom
	}), nil)

	_, err := uc.Execute(context.Background(), CreateUserInput{Email: "p@example.com", UserType: "staff"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected provisioning error, got %v", err)
	}

	// The user row is not rolled back.
	if n := f.count(t, &models.User{}, "email = ?", "p@example.com"); n != 1 {
		t.Fatalf("expected user to remain, got %d", n)
	}
}

func TestCreateSuperuser(t *testing.T) {
	f := newFixture(t)

	u, err := f.createSuperuser.Execute(context.Background(), CreateUserInput{
		Email:    "d@x.com",
		UserType: "staff",
		Password: testutil.Ptr("root"),
	})
	if err != nil {
		t.Fatalf("CreateSuperuser: %v", err)
	}
	if !u.IsAdmin || !u.IsStaff() {
		t.Fatalf("expected admin and staff: %+v", u)
	}

	stored, err := f.repo.GetUserByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.IsAdmin || !stored.IsStaff() || !stored.IsActive {
		t.Fatalf("flags not persisted: %+v", stored)
	}
	if n := f.count(t, &models.RoleProfile{}, "user_id = ? AND role = ?", u.ID, "staff"); n != 1 {
		t.Fatalf("expected 1 staff profile, got %d", n)
	}
	if n := f.count(t, &models.RoleProfile{}); n != 1 {
		t.Fatalf("provisioning must run once, got %d profiles", n)
	}
}

func TestCreateSuperuser_EmptyEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.createSuperuser.Execute(context.Background(), CreateUserInput{UserType: "staff"})
	if !errors.Is(err, httperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
