package db

import (
	"fmt"

	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/gorm"
)

func AutoMigrate(orm *gorm.DB) error {
	if err := orm.AutoMigrate(gormModels.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
