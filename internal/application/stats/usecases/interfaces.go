package usecases

import (
	"context"

	"recallhub/internal/application/stats/dto"
)

type SearchRecallsExecutor interface {
	Execute(ctx context.Context, query SearchRecallsQuery) (*SearchRecallsResult, error)
}

type GetRecallOverviewExecutor interface {
	Execute(ctx context.Context, query GetRecallOverviewQuery) (*dto.RecallOverviewDTO, error)
}

type GetRecallRankingExecutor interface {
	ExecuteMakerRanking(ctx context.Context, query GetRecallRankingQuery) (*GetRecallRankingResult, error)
	ExecuteModelRanking(ctx context.Context, query GetRecallRankingQuery) (*GetRecallRankingResult, error)
}

type GetYearTrendExecutor interface {
	Execute(ctx context.Context, query GetYearTrendQuery) (*GetYearTrendResult, error)
}

type GetFilterOptionsExecutor interface {
	Execute(ctx context.Context, query GetFilterOptionsQuery) (*dto.FilterOptionsDTO, error)
}
