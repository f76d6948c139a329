package usecases

import (
	"context"

	"recallhub/internal/application/stats/dto"
	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/constants"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type GetRecallRankingQuery struct {
	RegionAt *string
	MakerID  *uint
	Year     *int
	Limit    int
}

func (q GetRecallRankingQuery) filter() stats.SearchFilter {
	return stats.SearchFilter{
		Region:  q.RegionAt,
		MakerID: q.MakerID,
		Year:    q.Year,
	}
}

type GetRecallRankingResult struct {
	Ranking []dto.RankingItemDTO
}

// GetRecallRankingUseCase ranks manufacturers or models by recall count
// under the caller's region, maker and production-year scope.
type GetRecallRankingUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetRecallRankingUseCase(
	statsRepo stats.Repository,
	logger logger.Interface,
) *GetRecallRankingUseCase {
	return &GetRecallRankingUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *GetRecallRankingUseCase) ExecuteMakerRanking(ctx context.Context, query GetRecallRankingQuery) (*GetRecallRankingResult, error) {
	limit, err := normalizeLimit(query.Limit)
	if err != nil {
		return nil, err
	}

	rows, err := uc.statsRepo.GetMakerRanking(ctx, query.filter(), limit)
	if err != nil {
		uc.logger.Errorw("failed to get maker ranking", "error", err)
		return nil, err
	}

	return &GetRecallRankingResult{Ranking: dto.ToRankingItemDTOs(rows)}, nil
}

func (uc *GetRecallRankingUseCase) ExecuteModelRanking(ctx context.Context, query GetRecallRankingQuery) (*GetRecallRankingResult, error) {
	limit, err := normalizeLimit(query.Limit)
	if err != nil {
		return nil, err
	}

	rows, err := uc.statsRepo.GetModelRanking(ctx, query.filter(), limit)
	if err != nil {
		uc.logger.Errorw("failed to get model ranking", "error", err)
		return nil, err
	}

	return &GetRecallRankingResult{Ranking: dto.ToRankingItemDTOs(rows)}, nil
}

func normalizeLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, errors.NewValidationError("limit cannot be negative")
	}
	if limit == 0 {
		return constants.DefaultRankingLimit, nil
	}
	return limit, nil
}
