package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool or transaction) that a
	// request should run against.
	DBContextKey ContextKey = "db"

	UserIDContextKey ContextKey = "userID"
	RoleContextKey   ContextKey = "role"
)
