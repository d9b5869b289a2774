package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/accounts-api/internal/config"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	level := logger.Warn
	if cfg.DBDebug {
		level = logger.Info
	}

	db, err := Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(level),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open connects with driver errors translated to gorm errors,
// so unique violations surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	cfg.TranslateError = true
	return gorm.Open(dialector, cfg)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Address{},
		&models.User{},
		&models.RoleProfile{},
		&models.AuditLog{},
	)
}
