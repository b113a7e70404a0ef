package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cortefacil/corte-facil-api/internal/config"
	"github.com/cortefacil/corte-facil-api/internal/models"
)

// Connect opens the primary postgres store and, when it is unreachable,
// falls back to the embedded sqlite store. Both run the same gorm schema,
// so repositories never know which one is active. If neither store comes
// up the process terminates: there is no mode without persistence.
func Connect(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err == nil {
		tunePool(db, log)
		migrate(db, log)
		log.Info("persistence ready", zap.String("store", "postgres"))
		return db
	}

	log.Warn("postgres unavailable, falling back to sqlite",
		zap.Error(err),
		zap.String("sqlite_path", cfg.SQLitePath),
	)

	db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open sqlite fallback", zap.Error(err))
	}

	migrate(db, log)
	log.Info("persistence ready", zap.String("store", "sqlite"))
	return db
}

func tunePool(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
}

func migrate(db *gorm.DB, log *zap.Logger) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}
}
