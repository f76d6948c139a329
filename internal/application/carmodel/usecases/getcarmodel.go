package usecases

import (
	"context"

	"recallhub/internal/application/carmodel/dto"
	"recallhub/internal/domain/carmodel"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type GetCarModelQuery struct {
	ModelID uint
}

type GetCarModelUseCase struct {
	carModelRepo carmodel.Repository
	logger       logger.Interface
}

func NewGetCarModelUseCase(
	carModelRepo carmodel.Repository,
	logger logger.Interface,
) *GetCarModelUseCase {
	return &GetCarModelUseCase{
		carModelRepo: carModelRepo,
		logger:       logger,
	}
}

func (uc *GetCarModelUseCase) Execute(ctx context.Context, query GetCarModelQuery) (*dto.CarModelDTO, error) {
	if query.ModelID == 0 {
		return nil, errors.NewValidationError("model ID is required")
	}

	model, err := uc.carModelRepo.FindByID(ctx, query.ModelID)
	if err != nil {
		uc.logger.Warnw("failed to find car model", "model_id", query.ModelID, "error", err)
		return nil, err
	}

	return dto.ToCarModelDTO(model), nil
}
