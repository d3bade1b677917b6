package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParams answers 404 when one of the named path parameters is present
// but is not a UUID. Ids are stored in uuid columns, so such a value can
// never match a row.
func UUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			value, ok := c.Params.Get(name)
			if !ok {
				continue
			}
			if _, err := uuid.Parse(value); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "resource not found", "code": "not_found"})
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
