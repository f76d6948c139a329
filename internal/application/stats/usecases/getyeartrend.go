package usecases

import (
	"context"

	"recallhub/internal/application/stats/dto"
	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/logger"
)

type GetYearTrendQuery struct {
	RegionAt *string
	MakerID  *uint
}

type GetYearTrendResult struct {
	Trend []dto.YearCountDTO
}

// GetYearTrendUseCase reports, for each selectable production year, how
// many recalls hit models whose window overlaps that year.
type GetYearTrendUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetYearTrendUseCase(
	statsRepo stats.Repository,
	logger logger.Interface,
) *GetYearTrendUseCase {
	return &GetYearTrendUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *GetYearTrendUseCase) Execute(ctx context.Context, query GetYearTrendQuery) (*GetYearTrendResult, error) {
	rows, err := uc.statsRepo.GetYearTrend(ctx, stats.SearchFilter{
		Region:  query.RegionAt,
		MakerID: query.MakerID,
	})
	if err != nil {
		uc.logger.Errorw("failed to get year trend", "error", err)
		return nil, err
	}

	return &GetYearTrendResult{Trend: dto.ToYearCountDTOs(rows)}, nil
}
