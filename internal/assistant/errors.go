package assistant

import "errors"

var (
	ErrEmptyQuery = errors.New("please enter a query")
)
