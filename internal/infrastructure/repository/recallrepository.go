package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recallhub/internal/domain/recall"
	"recallhub/internal/infrastructure/persistence/mappers"
	"recallhub/internal/infrastructure/persistence/models"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
)

type RecallRepository struct {
	db     *gorm.DB
	mapper mappers.RecallMapper
}

func NewRecallRepository(database *gorm.DB) *RecallRepository {
	return &RecallRepository{
		db:     database,
		mapper: mappers.NewRecallMapper(),
	}
}

func (r *RecallRepository) Save(ctx context.Context, entity *recall.Recall) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDriverDuplicateError(err) {
			return errors.NewDuplicateKeyError(
				fmt.Sprintf("recall (%d, %d) already exists", entity.ModelID(), entity.RecallID()))
		}
		return fmt.Errorf("failed to save recall: %w", err)
	}

	return nil
}

func (r *RecallRepository) Update(ctx context.Context, entity *recall.Recall) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RecallModel{}).
		Where("model_id = ? AND recall_id = ?", model.ModelID, model.RecallID).
		Select("recall_title", "recall_type", "defect_desc", "fix_method",
			"recall_center", "recall_quantity", "recall_date", "device_type").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update recall: %w", result.Error)
	}

	return nil
}

func (r *RecallRepository) Delete(ctx context.Context, modelID, recallID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("model_id = ? AND recall_id = ?", modelID, recallID).
		Delete(&models.RecallModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recall: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("recall not found")
	}
	return nil
}

func (r *RecallRepository) DeleteByModelID(ctx context.Context, modelID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("model_id = ?", modelID).
		Delete(&models.RecallModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete recalls by model: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RecallRepository) ReassignModelID(ctx context.Context, oldModelID, newModelID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.RecallModel{}).
		Where("model_id = ?", oldModelID).
		Update("model_id", newModelID)
	if result.Error != nil {
		return fmt.Errorf("failed to reassign recalls: %w", result.Error)
	}
	return nil
}

func (r *RecallRepository) FindByKey(ctx context.Context, modelID, recallID uint) (*recall.Recall, error) {
	var model models.RecallModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("model_id = ? AND recall_id = ?", modelID, recallID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("recall not found")
		}
		return nil, fmt.Errorf("failed to find recall: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RecallRepository) ListByModelID(ctx context.Context, modelID uint) ([]*recall.Recall, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RecallModel{}).Where("model_id = ?", modelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recalls: %w", err)
	}

	var rows []models.RecallModel
	if err := query.Order("recall_id").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list recalls: %w", err)
	}

	result := make([]*recall.Recall, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}

	return result, total, nil
}

func (r *RecallRepository) CountByModelID(ctx context.Context, modelID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.RecallModel{}).
		Where("model_id = ?", modelID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recalls by model: %w", err)
	}

	return count, nil
}

func (r *RecallRepository) Exists(ctx context.Context, modelID, recallID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.RecallModel{}).
		Where("model_id = ? AND recall_id = ?", modelID, recallID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check recall existence: %w", err)
	}

	return count > 0, nil
}
