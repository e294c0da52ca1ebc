package connector

import "errors"

var (
	ErrNotSearchable   = errors.New("query has no search backend")
	ErrNotRegistered   = errors.New("no connector registered")
	ErrOpenUnsupported = errors.New("this backend's items are view-only")
	ErrItemNotFound    = errors.New("item not found")
)
