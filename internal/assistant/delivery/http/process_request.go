package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processOpenReq(c *gin.Context) (openReq, error) {
	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
