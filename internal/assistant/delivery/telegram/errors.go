package telegram

import (
	"errors"

	"jasper/internal/assistant"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	if errors.Is(err, assistant.ErrEmptyQuery) {
		return "Please enter a query."
	}
	return msgFail
}
