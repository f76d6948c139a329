package usecases

import (
	"context"

	"recallhub/internal/application/stats/dto"
	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/constants"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type SearchRecallsQuery struct {
	RegionAt *string
	MakerID  *uint
	Year     *int
	Keyword  *string
	Limit    int
}

type SearchRecallsResult struct {
	Recalls []dto.RecallSearchItemDTO
	Total   int
}

type SearchRecallsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewSearchRecallsUseCase(
	statsRepo stats.Repository,
	logger logger.Interface,
) *SearchRecallsUseCase {
	return &SearchRecallsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *SearchRecallsUseCase) Execute(ctx context.Context, query SearchRecallsQuery) (*SearchRecallsResult, error) {
	if query.Limit < 0 {
		return nil, errors.NewValidationError("limit cannot be negative")
	}

	limit := query.Limit
	if limit == 0 {
		limit = constants.DefaultSearchLimit
	}

	rows, err := uc.statsRepo.Search(ctx, stats.SearchFilter{
		Region:  query.RegionAt,
		MakerID: query.MakerID,
		Year:    query.Year,
		Keyword: query.Keyword,
		Limit:   limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to search recalls", "error", err)
		return nil, err
	}

	return &SearchRecallsResult{
		Recalls: dto.ToRecallSearchItemDTOs(rows),
		Total:   len(rows),
	}, nil
}
