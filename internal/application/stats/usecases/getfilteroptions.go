package usecases

import (
	"context"
	"time"

	"recallhub/internal/application/stats/dto"
	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/constants"
	"recallhub/internal/shared/logger"
)

type GetFilterOptionsQuery struct {
	RegionAt *string
}

// GetFilterOptionsUseCase assembles the choices offered to a search form:
// the manufacturers and the selectable production-year range. When no model
// carries a start date the year range falls back to a fixed lower bound up
// to the current year.
type GetFilterOptionsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewGetFilterOptionsUseCase(
	statsRepo stats.Repository,
	logger logger.Interface,
) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, query GetFilterOptionsQuery) (*dto.FilterOptionsDTO, error) {
	makers, err := uc.statsRepo.GetMakerOptions(ctx, query.RegionAt)
	if err != nil {
		uc.logger.Errorw("failed to get maker options", "error", err)
		return nil, err
	}

	yearRange, ok, err := uc.statsRepo.GetYearRange(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get year range", "error", err)
		return nil, err
	}
	if !ok {
		yearRange = stats.YearRange{
			Min: constants.FallbackYearMin,
			Max: uc.now().Year(),
		}
	}

	return &dto.FilterOptionsDTO{
		Makers:  dto.ToMakerOptionDTOs(makers),
		YearMin: yearRange.Min,
		YearMax: yearRange.Max,
	}, nil
}
