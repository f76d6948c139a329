package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"recallhub/internal/domain/stats"
	"recallhub/internal/shared/constants"
	"recallhub/internal/shared/db"
)

// StatsRepository serves the read-side queries by joining the recall,
// model and manufacturer tables directly. It bypasses the entity
// mappers on purpose: these are reporting projections, not aggregates.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(database *gorm.DB) *StatsRepository {
	return &StatsRepository{db: database}
}

// joined builds the three-table join with the filter's scope conditions
// applied. Keyword and Limit are left to the callers that use them.
func (r *StatsRepository) joined(ctx context.Context, filter stats.SearchFilter) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table(constants.TableRecall).
		Joins("JOIN model ON model.model_id = recall.model_id").
		Joins("JOIN manufacturer ON manufacturer.maker_id = model.maker_id")

	if filter.Region != nil {
		query = query.Where("manufacturer.region_at = ?", *filter.Region)
	}
	if filter.MakerID != nil {
		query = query.Where("manufacturer.maker_id = ?", *filter.MakerID)
	}
	if filter.Year != nil {
		// A model matches when its production window overlaps the
		// year. A NULL end date reads as still in production; a model
		// without a start date has no window and never matches. Plain
		// date comparisons keep this portable across MySQL and SQLite.
		yearStart := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := time.Date(*filter.Year, time.December, 31, 23, 59, 59, 0, time.UTC)
		query = query.
			Where("model.start_date IS NOT NULL AND model.start_date <= ?", yearEnd).
			Where("model.end_date IS NULL OR model.end_date >= ?", yearStart)
	}

	return query
}

func (r *StatsRepository) Search(ctx context.Context, filter stats.SearchFilter) ([]stats.SearchRow, error) {
	query := r.joined(ctx, filter).
		Select(`recall.recall_id, recall.model_id, model.model_name,
			manufacturer.maker_id, manufacturer.maker_name,
			recall.recall_title, recall.recall_type, recall.defect_desc,
			recall.fix_method, recall.recall_center, recall.recall_quantity,
			recall.recall_date, recall.device_type`)

	if filter.Keyword != nil {
		pattern := "%" + strings.ToLower(strings.TrimSpace(*filter.Keyword)) + "%"
		query = query.Where(
			"LOWER(manufacturer.maker_name) LIKE ? OR LOWER(model.model_name) LIKE ?",
			pattern, pattern)
	}

	query = query.Order("model.end_date DESC").Order("recall.recall_id")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []stats.SearchRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search recalls: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) GetOverview(ctx context.Context, filter stats.SearchFilter) (*stats.Overview, error) {
	var row struct {
		RecallCount   int64
		TotalQuantity int64
	}

	err := r.joined(ctx, filter).
		Select("COUNT(*) AS recall_count, COALESCE(SUM(recall.recall_quantity), 0) AS total_quantity").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recall overview: %w", err)
	}

	return &stats.Overview{
		RecallCount:   row.RecallCount,
		TotalQuantity: row.TotalQuantity,
	}, nil
}

func (r *StatsRepository) GetMakerRanking(ctx context.Context, filter stats.SearchFilter, limit int) ([]stats.RankingRow, error) {
	var rows []stats.RankingRow
	err := r.joined(ctx, filter).
		Select("manufacturer.maker_id AS id, manufacturer.maker_name AS name, COUNT(*) AS recall_count").
		Group("manufacturer.maker_id, manufacturer.maker_name").
		Order("recall_count DESC").
		Order("name").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get maker ranking: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) GetModelRanking(ctx context.Context, filter stats.SearchFilter, limit int) ([]stats.RankingRow, error) {
	var rows []stats.RankingRow
	err := r.joined(ctx, filter).
		Select("model.model_id AS id, model.model_name AS name, COUNT(*) AS recall_count").
		Group("model.model_id, model.model_name").
		Order("recall_count DESC").
		Order("name").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get model ranking: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) GetYearTrend(ctx context.Context, filter stats.SearchFilter) ([]stats.YearCount, error) {
	yearRange, ok, err := r.GetYearRange(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get year trend: %w", err)
	}
	if !ok {
		return []stats.YearCount{}, nil
	}

	// The window-overlap predicate cannot be grouped by year in one
	// statement, so the count runs once per year of the range. Years
	// without recalls stay in the trend with a zero count.
	result := make([]stats.YearCount, 0, yearRange.Max-yearRange.Min+1)
	for year := yearRange.Min; year <= yearRange.Max; year++ {
		y := year
		filter.Year = &y

		var count int64
		if err := r.joined(ctx, filter).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to get year trend: %w", err)
		}
		result = append(result, stats.YearCount{Year: year, RecallCount: count})
	}

	return result, nil
}

func (r *StatsRepository) GetMakerOptions(ctx context.Context, region *string) ([]stats.MakerOption, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table(constants.TableManufacturer).
		Select("maker_id, maker_name").
		Order("maker_name")
	if region != nil {
		query = query.Where("region_at = ?", *region)
	}

	var rows []stats.MakerOption
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get maker options: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) GetYearRange(ctx context.Context) (stats.YearRange, bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// MIN/MAX aggregates drop the declared column type on SQLite and
	// the date scan fails, so each bound comes from an ordered
	// single-row query. Only models with a complete window count.
	windowed := func() *gorm.DB {
		return tx.Table(constants.TableModel).
			Where("start_date IS NOT NULL AND end_date IS NOT NULL")
	}

	var firstStart []time.Time
	if err := windowed().Order("start_date").Limit(1).Pluck("start_date", &firstStart).Error; err != nil {
		return stats.YearRange{}, false, fmt.Errorf("failed to get year range: %w", err)
	}

	var lastEnd []time.Time
	if err := windowed().Order("end_date DESC").Limit(1).Pluck("end_date", &lastEnd).Error; err != nil {
		return stats.YearRange{}, false, fmt.Errorf("failed to get year range: %w", err)
	}

	if len(firstStart) == 0 || len(lastEnd) == 0 {
		return stats.YearRange{}, false, nil
	}

	return stats.YearRange{Min: firstStart[0].Year(), Max: lastEnd[0].Year()}, true, nil
}
