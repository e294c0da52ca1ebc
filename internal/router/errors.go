package router

import "errors"

var (
	ErrEmptyResponse = errors.New("empty classifier response")
	ErrInvalidJSON   = errors.New("classifier response is not valid JSON")
	ErrNotObject     = errors.New("classifier response is not a JSON object")
)
