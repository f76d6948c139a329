package usecases

import (
	"context"

	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/logger"
)

type mockStatsRepository struct {
	SearchFunc          func(ctx context.Context, filter stats.SearchFilter) ([]stats.SearchRow, error)
	GetOverviewFunc     func(ctx context.Context, filter stats.SearchFilter) (*stats.Overview, error)
	GetMakerRankingFunc func(ctx context.Context, filter stats.SearchFilter, limit int) ([]stats.RankingRow, error)
	GetModelRankingFunc func(ctx context.Context, filter stats.SearchFilter, limit int) ([]stats.RankingRow, error)
	GetYearTrendFunc    func(ctx context.Context, filter stats.SearchFilter) ([]stats.YearCount, error)
	GetMakerOptionsFunc func(ctx context.Context, region *string) ([]stats.MakerOption, error)
	GetYearRangeFunc    func(ctx context.Context) (stats.YearRange, bool, error)
}

func (m *mockStatsRepository) Search(ctx context.Context, filter stats.SearchFilter) ([]stats.SearchRow, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockStatsRepository) GetOverview(ctx context.Context, filter stats.SearchFilter) (*stats.Overview, error) {
	if m.GetOverviewFunc != nil {
		return m.GetOverviewFunc(ctx, filter)
	}
	return &stats.Overview{}, nil
}

func (m *mockStatsRepository) GetMakerRanking(ctx context.Context, filter stats.SearchFilter, limit int) ([]stats.RankingRow, error) {
	if m.GetMakerRankingFunc != nil {
		return m.GetMakerRankingFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockStatsRepository) GetModelRanking(ctx context.Context, filter stats.SearchFilter, limit int) ([]stats.RankingRow, error) {
	if m.GetModelRankingFunc != nil {
		return m.GetModelRankingFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockStatsRepository) GetYearTrend(ctx context.Context, filter stats.SearchFilter) ([]stats.YearCount, error) {
	if m.GetYearTrendFunc != nil {
		return m.GetYearTrendFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockStatsRepository) GetMakerOptions(ctx context.Context, region *string) ([]stats.MakerOption, error) {
	if m.GetMakerOptionsFunc != nil {
		return m.GetMakerOptionsFunc(ctx, region)
	}
	return nil, nil
}

func (m *mockStatsRepository) GetYearRange(ctx context.Context) (stats.YearRange, bool, error) {
	if m.GetYearRangeFunc != nil {
		return m.GetYearRangeFunc(ctx)
	}
	return stats.YearRange{}, false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
