package gmail

import "time"

// DefaultUser addresses the authenticated account.
const DefaultUser = "me"

// DefaultTokenPath is where the installed-app OAuth token is read from.
const DefaultTokenPath = "token.json"

// SearchRequest is the input for a message search.
type SearchRequest struct {
	// Query uses Gmail search operators (from:, subject:, after:, ...).
	Query      string
	MaxResults int64
}

// Message is a simplified Gmail message.
type Message struct {
	ID            string
	ThreadID      string
	From          string
	Subject       string
	Snippet       string
	Body          string
	Date          time.Time
	HasAttachment bool
	Link          string
}
