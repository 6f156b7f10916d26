package contextkeys

// Custom key type avoids collisions with other packages writing to the context.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB (pool or
// transaction) is stored.
const DBContextKey = contextKey("db")
