package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableManufacturer = "manufacturer"
	TableModel        = "model"
	TableRecall       = "recall"

	// Reporting defaults
	DefaultRankingLimit = 10
	DefaultSearchLimit  = 500

	// Fallback production-year range when no model carries a start date
	FallbackYearMin = 2000

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
