package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the blog needs.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return fmt.Errorf("setup post tags join table: %w", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}

func (c *Connection) Migrate() error {
	return Migrate(c.driver)
}
