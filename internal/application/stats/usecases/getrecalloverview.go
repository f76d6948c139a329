package usecases

import (
	"context"

	"recallhub/internal/application/stats/dto"
	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/logger"
)

type GetRecallOverviewQuery struct {
	RegionAt *string
	MakerID  *uint
	Year     *int
}

type GetRecallOverviewUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetRecallOverviewUseCase(
	statsRepo stats.Repository,
	logger logger.Interface,
) *GetRecallOverviewUseCase {
	return &GetRecallOverviewUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *GetRecallOverviewUseCase) Execute(ctx context.Context, query GetRecallOverviewQuery) (*dto.RecallOverviewDTO, error) {
	overview, err := uc.statsRepo.GetOverview(ctx, stats.SearchFilter{
		Region:  query.RegionAt,
		MakerID: query.MakerID,
		Year:    query.Year,
	})
	if err != nil {
		uc.logger.Errorw("failed to get recall overview", "error", err)
		return nil, err
	}

	return &dto.RecallOverviewDTO{
		RecallCount:   overview.RecallCount,
		TotalQuantity: overview.TotalQuantity,
	}, nil
}
