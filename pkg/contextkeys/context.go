package contextkeys

// Custom type avoids collisions with other context keys.
type contextKey string

// DBContextKey is where the *gorm.DB handle (pool or test transaction)
// lives in the request context.
const DBContextKey = contextKey("db")
