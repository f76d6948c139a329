package usecases

import (
	"context"

	"recallhub/internal/application/manufacturer/dto"
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/shared/logger"
)

type ListManufacturersQuery struct {
	RegionAt *string
	Name     *string
}

type ListManufacturersResult struct {
	Manufacturers []*dto.ManufacturerDTO
	Total         int64
}

type ListManufacturersUseCase struct {
	manufacturerRepo manufacturer.Repository
	logger           logger.Interface
}

func NewListManufacturersUseCase(
	manufacturerRepo manufacturer.Repository,
	logger logger.Interface,
) *ListManufacturersUseCase {
	return &ListManufacturersUseCase{
		manufacturerRepo: manufacturerRepo,
		logger:           logger,
	}
}

func (uc *ListManufacturersUseCase) Execute(ctx context.Context, query ListManufacturersQuery) (*ListManufacturersResult, error) {
	filter := manufacturer.Filter{
		Region: query.RegionAt,
		Name:   query.Name,
	}

	makers, total, err := uc.manufacturerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list manufacturers", "error", err)
		return nil, err
	}

	return &ListManufacturersResult{
		Manufacturers: dto.ToManufacturerDTOs(makers),
		Total:         total,
	}, nil
}
