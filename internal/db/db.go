package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/config"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.MembershipPlan{},
		&models.Subscription{},
		&models.Payment{},
		&models.Attendance{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// At most one active subscription per member. GORM cannot express a
	// partial unique index, so concurrent activations are serialized here.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_subscription_per_member
        ON subscriptions (member_id)
        WHERE status = 'active'
    `)

	return db
}
