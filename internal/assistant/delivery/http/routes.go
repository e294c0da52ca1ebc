package http

import (
	"github.com/gin-gonic/gin"

	"jasper/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Query)
	rg.POST("/open", mw.RateLimit(), h.Open)
	rg.GET("/index-status", h.IndexStatus)
}
