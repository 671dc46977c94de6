package database

import (
	"log"

	"scrawl-notes/scrawl/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.Note{},
		&models.Tag{},
		&models.Event{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	// Per-user, case-insensitive name uniqueness. Expression indexes cannot be
	// declared through struct tags, so they are created here.
	uniqueNameIndexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_folders_user_lower_name ON folders (user_id, lower(name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_user_lower_name ON tags (user_id, lower(name))`,
	}
	for _, stmt := range uniqueNameIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	return nil
}
