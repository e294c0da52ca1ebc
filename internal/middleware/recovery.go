package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the error response shape, with the stack in
// the trace field.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				trace := string(debug.Stack())
				mw.l.Errorf(c.Request.Context(), "%s.Recovery: panic: %v\n%s", LogPrefix, r, trace)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"type":    "error",
					"content": fmt.Sprintf("Backend Error: %v", r),
					"trace":   trace,
				})
			}
		}()
		c.Next()
	}
}
