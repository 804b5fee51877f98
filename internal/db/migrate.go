package db

import (
	"fmt"

	"github.com/zulandar/pitstop/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Role{},
		&models.Person{},
		&models.Car{},
		&models.Color{},
		&models.Work{},
		&models.WorkAssignment{},
		&models.WorkAssignmentWork{},
	}
}

// AutoMigrate creates or updates all tables. Idempotent: existing tables are
// left alone apart from additive column changes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
