package database

import (
	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
)

// Migrate applies the schema. uuid_generate_v4 defaults require the
// uuid-ossp extension, created here so a fresh database works out of the box.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.HR{},
		&models.JobSeeker{},
		&models.JobOpening{},
		&models.JobApplication{},
	)
}
