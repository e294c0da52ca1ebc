package resolver

import (
	"time"

	"jasper/internal/intent"
	"jasper/internal/model"
)

// Options configures a Resolver.
type Options struct {
	// DefaultProvider is used when neither the text nor the classifier names one.
	DefaultProvider model.Provider
	// Now is the clock relative dates are measured from. Defaults to time.Now.
	Now func() time.Time
}

// Result is a resolved query together with the override trace that produced it.
type Result struct {
	Query    model.ResolvedQuery
	Decision intent.Decision
}

// mailDraft is the working set the mail stages pass along.
type mailDraft struct {
	sender        string
	subject       string
	body          string
	query         string
	predicted     string
	dateFilter    string
	hasAttachment bool
	recheckSender bool
	limit         int
	dates         dateRange
}

type dateRange struct {
	from *time.Time
	to   *time.Time
}
