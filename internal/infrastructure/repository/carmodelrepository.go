package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/infrastructure/persistence/mappers"
	"recallhub/internal/infrastructure/persistence/models"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
)

type CarModelRepository struct {
	db     *gorm.DB
	mapper mappers.CarModelMapper
}

func NewCarModelRepository(database *gorm.DB) *CarModelRepository {
	return &CarModelRepository{
		db:     database,
		mapper: mappers.NewCarModelMapper(),
	}
}

func (r *CarModelRepository) Save(ctx context.Context, m *carmodel.CarModel) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	return m.SetID(model.ModelID)
}

func (r *CarModelRepository) Update(ctx context.Context, m *carmodel.CarModel) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CarModelModel{}).
		Where("model_id = ?", model.ModelID).
		Select("maker_id", "model_name", "start_date", "end_date").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update model: %w", result.Error)
	}

	return nil
}

func (r *CarModelRepository) UpdateID(ctx context.Context, oldID, newID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CarModelModel{}).
		Where("model_id = ?", oldID).
		Update("model_id", newID)

	if result.Error != nil {
		return fmt.Errorf("failed to update model ID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("model not found")
	}

	return nil
}

func (r *CarModelRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("model_id = ?", id).Delete(&models.CarModelModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete model: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("model not found")
	}
	return nil
}

func (r *CarModelRepository) FindByID(ctx context.Context, id uint) (*carmodel.CarModel, error) {
	var model models.CarModelModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("model_id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("model not found")
		}
		return nil, fmt.Errorf("failed to find model: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CarModelRepository) List(ctx context.Context, filter carmodel.Filter) ([]*carmodel.CarModel, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CarModelModel{})

	if filter.MakerID != nil {
		query = query.Where("maker_id = ?", *filter.MakerID)
	}
	if filter.Name != nil {
		query = query.Where("model_name LIKE ?", "%"+*filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count models: %w", err)
	}

	var rows []models.CarModelModel
	if err := query.Order("model_name").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list models: %w", err)
	}

	result := make([]*carmodel.CarModel, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}

	return result, total, nil
}

func (r *CarModelRepository) CountByMakerID(ctx context.Context, makerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CarModelModel{}).
		Where("maker_id = ?", makerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count models by maker: %w", err)
	}

	return count, nil
}

func (r *CarModelRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CarModelModel{}).
		Where("model_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check model existence: %w", err)
	}

	return count > 0, nil
}
