package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/domain/activity"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(activity.Models()...)
}

// EnsureActivityIndexes adds the listing index AutoMigrate cannot express.
func EnsureActivityIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_activity_logs_created_id
		ON activity_logs (created_at DESC, id DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_activity_logs_created_id: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_activity_logs_unreviewed
		ON activity_logs (created_at DESC)
		WHERE reviewed = false;
	`).Error; err != nil {
		return fmt.Errorf("create idx_activity_logs_unreviewed: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureActivityIndexes(s.db); err != nil {
		s.log.Error("Activity index migration failed", "error", err)
		return err
	}
	return nil
}
