package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jasper/pkg/log"
)

// RequestID tags the request context with an id, reusing the caller's
// X-Request-ID when present.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
