package database

import (
	"fmt"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurant tables
func Migrate(db *gorm.DB) error {
	log.Info("Running restaurant schema migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderSequence{},
		&models.Reservation{},
		&models.Staff{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
