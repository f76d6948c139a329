package usecases

import (
	"context"

	"recallhub/internal/application/carmodel/dto"
	"recallhub/internal/domain/carmodel"
	"recallhub/internal/shared/logger"
)

type ListCarModelsQuery struct {
	MakerID *uint
	Name    *string
}

type ListCarModelsResult struct {
	Models []*dto.CarModelDTO
	Total  int64
}

type ListCarModelsUseCase struct {
	carModelRepo carmodel.Repository
	logger       logger.Interface
}

func NewListCarModelsUseCase(
	carModelRepo carmodel.Repository,
	logger logger.Interface,
) *ListCarModelsUseCase {
	return &ListCarModelsUseCase{
		carModelRepo: carModelRepo,
		logger:       logger,
	}
}

func (uc *ListCarModelsUseCase) Execute(ctx context.Context, query ListCarModelsQuery) (*ListCarModelsResult, error) {
	filter := carmodel.Filter{
		MakerID: query.MakerID,
		Name:    query.Name,
	}

	models, total, err := uc.carModelRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list car models", "error", err)
		return nil, err
	}

	return &ListCarModelsResult{
		Models: dto.ToCarModelDTOs(models),
		Total:  total,
	}, nil
}
