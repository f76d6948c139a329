// Package repository contains the gorm-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/infrastructure/persistence/mappers"
	"recallhub/internal/infrastructure/persistence/models"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
)

type ManufacturerRepository struct {
	db     *gorm.DB
	mapper mappers.ManufacturerMapper
}

func NewManufacturerRepository(database *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{
		db:     database,
		mapper: mappers.NewManufacturerMapper(),
	}
}

func (r *ManufacturerRepository) Save(ctx context.Context, m *manufacturer.Manufacturer) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save manufacturer: %w", err)
	}

	return m.SetID(model.MakerID)
}

func (r *ManufacturerRepository) Update(ctx context.Context, m *manufacturer.Manufacturer) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select all mutable columns so optional fields can be cleared to NULL.
	result := tx.
		Model(&models.ManufacturerModel{}).
		Where("maker_id = ?", model.MakerID).
		Select("maker_name", "maker_detail", "region_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update manufacturer: %w", result.Error)
	}

	return nil
}

func (r *ManufacturerRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("maker_id = ?", id).Delete(&models.ManufacturerModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete manufacturer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("manufacturer not found")
	}
	return nil
}

func (r *ManufacturerRepository) FindByID(ctx context.Context, id uint) (*manufacturer.Manufacturer, error) {
	var model models.ManufacturerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("maker_id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("manufacturer not found")
		}
		return nil, fmt.Errorf("failed to find manufacturer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ManufacturerRepository) List(ctx context.Context, filter manufacturer.Filter) ([]*manufacturer.Manufacturer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ManufacturerModel{})

	if filter.Region != nil {
		query = query.Where("region_at = ?", *filter.Region)
	}
	if filter.Name != nil {
		query = query.Where("maker_name LIKE ?", "%"+*filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count manufacturers: %w", err)
	}

	var rows []models.ManufacturerModel
	if err := query.Order("maker_name").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	result := make([]*manufacturer.Manufacturer, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}

	return result, total, nil
}

func (r *ManufacturerRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ManufacturerModel{}).
		Where("maker_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check manufacturer existence: %w", err)
	}

	return count > 0, nil
}
