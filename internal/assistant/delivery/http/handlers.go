package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Query godoc
// @Summary     Run a natural-language request
// @Description Classifies the request, resolves it into a literal query, searches the matching backend and optionally summarizes. Backend failures come back as type "error".
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "User request"
// @Success     200 {object} queryResp
// @Failure     400 {object} queryResp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} queryResp "Backend Error"
// @Router      /api/v1/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newQueryErrorResp(err))
		return
	}

	output, err := h.uc.Query(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Query: %v", err)
		c.JSON(mapQueryStatus(err), newQueryErrorResp(err))
		return
	}

	c.JSON(http.StatusOK, h.newQueryResp(output))
}

// Open godoc
// @Summary     Open an item
// @Description Opens a mail or file on its backend. View-only backends are ignored.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body openReq true "Item to open"
// @Success     200 {object} openResp
// @Failure     400 {object} openResp "Bad Request"
// @Failure     404 {object} openResp "Not Found"
// @Failure     500 {object} openResp "Internal Server Error"
// @Router      /api/v1/open [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, openResp{Status: "error", Message: err.Error()})
		return
	}

	output, err := h.uc.Open(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Open: %v", err)
		c.JSON(mapOpenStatus(err), openResp{Status: "error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.newOpenResp(output))
}

// IndexStatus godoc
// @Summary     Semantic index progress
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} indexStatusResp
// @Router      /api/v1/index-status [GET]
func (h *handler) IndexStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.IndexStatus(c.Request.Context()))
}
