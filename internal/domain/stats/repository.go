package stats

import "context"

// Repository exposes the read-side queries over the recall registry.
type Repository interface {
	// Search returns recalls joined with their model and manufacturer,
	// newest production window first.
	Search(ctx context.Context, filter SearchFilter) ([]SearchRow, error)

	// GetOverview aggregates recall count and total affected quantity
	// for the given filter (Keyword and Limit are ignored).
	GetOverview(ctx context.Context, filter SearchFilter) (*Overview, error)

	// GetMakerRanking returns the top manufacturers by recall count
	// under the given filter (Keyword and Limit are ignored).
	GetMakerRanking(ctx context.Context, filter SearchFilter, limit int) ([]RankingRow, error)

	// GetModelRanking returns the top models by recall count under the
	// given filter (Keyword and Limit are ignored).
	GetModelRanking(ctx context.Context, filter SearchFilter, limit int) ([]RankingRow, error)

	// GetYearTrend counts, for every year of the selectable range, the
	// recalls whose model production window overlaps that year. The
	// filter's Year is set per evaluated year.
	GetYearTrend(ctx context.Context, filter SearchFilter) ([]YearCount, error)

	// GetMakerOptions lists manufacturers for filter dropdowns,
	// optionally scoped to a region.
	GetMakerOptions(ctx context.Context, region *string) ([]MakerOption, error)

	// GetYearRange returns the span from the earliest production start
	// year to the latest production end year, over models carrying both
	// dates. ok is false when no model has a complete window.
	GetYearRange(ctx context.Context) (YearRange, bool, error)
}
