package usecases

import (
	"context"

	"recallhub/internal/application/manufacturer/dto"
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type GetManufacturerQuery struct {
	MakerID uint
}

type GetManufacturerUseCase struct {
	manufacturerRepo manufacturer.Repository
	logger           logger.Interface
}

func NewGetManufacturerUseCase(
	manufacturerRepo manufacturer.Repository,
	logger logger.Interface,
) *GetManufacturerUseCase {
	return &GetManufacturerUseCase{
		manufacturerRepo: manufacturerRepo,
		logger:           logger,
	}
}

func (uc *GetManufacturerUseCase) Execute(ctx context.Context, query GetManufacturerQuery) (*dto.ManufacturerDTO, error) {
	if query.MakerID == 0 {
		return nil, errors.NewValidationError("maker ID is required")
	}

	maker, err := uc.manufacturerRepo.FindByID(ctx, query.MakerID)
	if err != nil {
		uc.logger.Warnw("failed to find manufacturer", "maker_id", query.MakerID, "error", err)
		return nil, err
	}

	return dto.ToManufacturerDTO(maker), nil
}
