package mappers

import (
	"recallhub/internal/domain/carmodel"
	"recallhub/internal/infrastructure/persistence/models"
)

// CarModelMapper handles the conversion between CarModel domain entities and
// persistence models.
type CarModelMapper interface {
	ToModel(m *carmodel.CarModel) *models.CarModelModel
	ToDomain(model *models.CarModelModel) (*carmodel.CarModel, error)
}

type CarModelMapperImpl struct{}

func NewCarModelMapper() CarModelMapper {
	return &CarModelMapperImpl{}
}

func (m *CarModelMapperImpl) ToModel(entity *carmodel.CarModel) *models.CarModelModel {
	return &models.CarModelModel{
		ModelID:   entity.ID(),
		MakerID:   entity.MakerID(),
		ModelName: entity.Name(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
	}
}

func (m *CarModelMapperImpl) ToDomain(model *models.CarModelModel) (*carmodel.CarModel, error) {
	return carmodel.ReconstructCarModel(
		model.ModelID,
		model.MakerID,
		model.ModelName,
		model.StartDate,
		model.EndDate,
	)
}
