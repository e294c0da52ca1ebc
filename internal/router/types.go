package router

import "jasper/internal/model"

// Classification is the sanitized classifier output. When Fallback is set the
// caller must route the original text to open conversation.
type Classification struct {
	Raw      model.RawClassification
	Fallback bool
	// Reason explains a fallback; nil otherwise.
	Reason error
}
