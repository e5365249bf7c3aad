package error

// Cross-cutting error codes shared by middleware and controllers.
const (
	// ErrCodeRateLimited is returned when a client exceeds the request rate limit.
	ErrCodeRateLimited = "CMN-010001"
)
