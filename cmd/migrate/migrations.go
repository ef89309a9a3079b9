package main

import (
	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},

		// Journey
		&models.Certification{},
		&models.LearningPath{},
		&models.PathStep{},
		&models.Milestone{},
		&models.ProgressCategory{},
		&models.ProgressItem{},

		// Content
		&models.Command{},
		&models.Project{},
		&models.Template{},
		&models.SkillCategory{},
		&models.SkillFocus{},
		&models.TimelineEvent{},
	}
}

// runMigrations executes all database migrations. The uuid extension must
// exist before AutoMigrate creates columns defaulting to gen_random_uuid().
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return addOrderIndexes(db)
}

// enableUUIDExtension ensures UUID generation is available
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addOrderIndexes adds composite indexes for the ordered child lookups
func addOrderIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_path_steps_path_order
		ON path_steps(path_id, order_index)
	`).Error; err != nil {
		return err
	}
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_progress_items_category_order
		ON progress_items(category_id, order_index)
	`).Error
}
