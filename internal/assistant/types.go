package assistant

import "jasper/internal/model"

// ResponseType tells the client how to render a Response.
type ResponseType string

const (
	ResponseResults ResponseType = "results"
	ResponseChat    ResponseType = "chat"
	ResponseError   ResponseType = "error"
)

// Result categories.
const (
	CategoryMail  = "mail"
	CategoryFiles = "files"
)

// QueryInput is a free-text request.
type QueryInput struct {
	Text string
}

// Response is the outcome of a query.
type Response struct {
	Type     ResponseType
	Content  string
	Data     []model.SearchResult
	Category string
	Intent   model.Intent
}

// OpenInput names an item and the backend it came from.
type OpenInput struct {
	ID       string
	Provider string
}

// OpenStatus is the outcome of an open request.
type OpenStatus string

const (
	OpenStatusOK      OpenStatus = "ok"
	OpenStatusIgnored OpenStatus = "ignored"
)

// OpenOutput is the result of Open.
type OpenOutput struct {
	Status  OpenStatus
	Message string
}
