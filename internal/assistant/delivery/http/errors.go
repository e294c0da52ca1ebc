package http

import (
	"errors"
	"net/http"

	"jasper/internal/assistant"
	"jasper/internal/connector"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInternal    = errors.New("internal error")
)

// mapQueryStatus picks the HTTP status for a query the pipeline refused.
func mapQueryStatus(err error) int {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// mapOpenStatus picks the HTTP status for a failed open.
func mapOpenStatus(err error) int {
	switch {
	case errors.Is(err, connector.ErrItemNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
