package database

import (
	"fmt"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserData{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
