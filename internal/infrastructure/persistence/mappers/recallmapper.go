package mappers

import (
	"recallhub/internal/domain/recall"
	"recallhub/internal/infrastructure/persistence/models"
)

// RecallMapper handles the conversion between Recall domain entities and
// persistence models.
type RecallMapper interface {
	ToModel(r *recall.Recall) *models.RecallModel
	ToDomain(model *models.RecallModel) (*recall.Recall, error)
}

type RecallMapperImpl struct{}

func NewRecallMapper() RecallMapper {
	return &RecallMapperImpl{}
}

func (m *RecallMapperImpl) ToModel(entity *recall.Recall) *models.RecallModel {
	return &models.RecallModel{
		RecallID:       entity.RecallID(),
		ModelID:        entity.ModelID(),
		RecallTitle:    entity.Title(),
		RecallType:     entity.RecallType(),
		DefectDesc:     entity.DefectDesc(),
		FixMethod:      entity.FixMethod(),
		RecallCenter:   entity.Center(),
		RecallQuantity: entity.Quantity(),
		RecallDate:     entity.RecallDate(),
		DeviceType:     entity.DeviceType(),
	}
}

func (m *RecallMapperImpl) ToDomain(model *models.RecallModel) (*recall.Recall, error) {
	return recall.ReconstructRecall(
		model.RecallID,
		model.ModelID,
		model.RecallTitle,
		model.DeviceType,
		model.RecallType,
		model.DefectDesc,
		model.FixMethod,
		model.RecallCenter,
		model.RecallQuantity,
		model.RecallDate,
	)
}
