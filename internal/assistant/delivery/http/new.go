package http

import (
	"github.com/gin-gonic/gin"

	"jasper/internal/assistant"
	"jasper/pkg/log"
)

// Handler is the HTTP delivery of the assistant.
type Handler interface {
	Query(c *gin.Context)
	Open(c *gin.Context)
	IndexStatus(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
