package testutil

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/accounts-api/internal/db"
	"github.com/BruksfildServices01/accounts-api/internal/domain/account"
)

// OpenTestDB opens a migrated in-memory SQLite database private to the test.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Each test gets its own shared-cache database so pooled connections see the same data.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	gdb, err := db.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}

// FastPasswords lowers the bcrypt cost for the duration of the test.
func FastPasswords(t *testing.T) {
	t.Helper()
	prev := account.PasswordCost
	account.PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { account.PasswordCost = prev })
}

func Ptr[T any](v T) *T {
	return &v
}
