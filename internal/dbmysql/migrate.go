package dbmysql

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. It runs exactly once at startup,
// before the server accepts traffic, and is idempotent so repeated boots and
// concurrent replicas are safe.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Post{},
		&Comment{},
		&Like{},
		&Save{},
		&Follow{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return backfillLegacyUsernames(db)
}

// Rows created before the username column existed get a deterministic
// placeholder so the unique index can hold.
func backfillLegacyUsernames(db *gorm.DB) error {
	err := db.Exec(
		"UPDATE users SET username = CONCAT('user_', user_id) WHERE username IS NULL OR TRIM(username) = ''",
	).Error
	if err != nil {
		return fmt.Errorf("backfill usernames: %w", err)
	}
	return nil
}
