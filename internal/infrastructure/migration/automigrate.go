package migration

import (
	"fmt"

	"gorm.io/gorm"

	"recallhub/internal/infrastructure/persistence/models"
	"recallhub/internal/shared/logger"
)

// AutoMigrateModels returns the persistence models covered by schema
// migration, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ManufacturerModel{},
		&models.CarModelModel{},
		&models.RecallModel{},
	}
}

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

// Migrate runs GORM AutoMigrate over the given models
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting GORM AutoMigrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("GORM AutoMigrate completed successfully")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
