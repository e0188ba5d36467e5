package migration

import (
	"Recipe-Share/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates or updates the users and recipes tables. Users go first
// because recipes reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Errorw("error migrating user table", "error", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Errorw("error migrating recipe table", "error", err)
		return err
	}

	log.Info("database migration complete")
	return nil
}
