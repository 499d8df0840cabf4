package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio_backend/pkg/contextkeys"
)

// DBMiddleware injects the database handle into every request context.
// Handlers fetch it back via BaseHandler.GetDB, which lets tests swap the
// pool for a transaction or an in-memory database.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), db)
		c.Next()
	}
}
