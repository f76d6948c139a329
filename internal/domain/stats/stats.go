// Package stats holds the read models backing recall search and
// reporting. These are query projections over the manufacturer, model
// and recall tables rather than aggregates of their own, so they carry
// no behavior beyond their fields.
package stats

// SearchFilter narrows a recall search. Nil fields are ignored.
type SearchFilter struct {
	// Region restricts results to manufacturers registered in the
	// given region (exact match on region_at).
	Region *string
	// MakerID restricts results to a single manufacturer.
	MakerID *uint
	// Year keeps models whose production window overlaps the given
	// year. A missing end date reads as still in production; models
	// without a start date never match.
	Year *int
	// Keyword is matched case-insensitively against the manufacturer
	// and model names.
	Keyword *string
	// Limit caps the number of rows returned; zero means no cap.
	Limit int
}

// SearchRow is one recall joined with its model and manufacturer.
type SearchRow struct {
	RecallID       uint
	ModelID        uint
	ModelName      string
	MakerID        uint
	MakerName      string
	RecallTitle    string
	RecallType     *string
	DefectDesc     *string
	FixMethod      *string
	RecallCenter   *string
	RecallQuantity *int
	RecallDate     *string
	DeviceType     *string
}

// Overview aggregates the recall corpus for a KPI header.
type Overview struct {
	RecallCount   int64
	TotalQuantity int64
}

// RankingRow is one manufacturer or model ranked by recall count.
type RankingRow struct {
	ID          uint
	Name        string
	RecallCount int64
}

// MakerOption is a manufacturer offered as a search filter choice.
type MakerOption struct {
	MakerID   uint
	MakerName string
}

// YearCount is the number of recalls whose model production window
// overlaps one year.
type YearCount struct {
	Year        int
	RecallCount int64
}

// YearRange bounds the production years selectable in a search.
type YearRange struct {
	Min int
	Max int
}
