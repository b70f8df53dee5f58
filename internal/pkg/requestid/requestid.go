package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header is the header used to carry the request ID in both directions.
const Header = "X-Request-ID"

const contextKey = "requestID"

// Middleware assigns every request an ID, reusing a valid incoming one.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// Get returns the request ID stored by Middleware, or "" if none.
func Get(c *gin.Context) string {
	return c.GetString(contextKey)
}
