package mappers

import (
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/infrastructure/persistence/models"
)

// ManufacturerMapper handles the conversion between Manufacturer domain
// entities and persistence models.
type ManufacturerMapper interface {
	ToModel(m *manufacturer.Manufacturer) *models.ManufacturerModel
	ToDomain(model *models.ManufacturerModel) (*manufacturer.Manufacturer, error)
}

type ManufacturerMapperImpl struct{}

func NewManufacturerMapper() ManufacturerMapper {
	return &ManufacturerMapperImpl{}
}

func (m *ManufacturerMapperImpl) ToModel(entity *manufacturer.Manufacturer) *models.ManufacturerModel {
	return &models.ManufacturerModel{
		MakerID:     entity.ID(),
		MakerName:   entity.Name(),
		MakerDetail: entity.Detail(),
		RegionAt:    entity.Region(),
	}
}

func (m *ManufacturerMapperImpl) ToDomain(model *models.ManufacturerModel) (*manufacturer.Manufacturer, error) {
	return manufacturer.ReconstructManufacturer(
		model.MakerID,
		model.MakerName,
		model.MakerDetail,
		model.RegionAt,
	)
}
