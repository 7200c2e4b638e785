package constant

// Constant package provides constants used throughout the application.

type ctxKey string

const (
	CorrelationIDKey ctxKey = "CorrelationID"
)

// Gin context keys shared between middleware and handlers.
const (
	JWTPayloadKey = "jwtPayload"
)

// Mongo collection names.
const (
	UsersCollection   = "users"
	CoursesCollection = "courses"
)
