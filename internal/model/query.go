package model

import "time"

// MailQuery is a resolved mail search. Empty strings mean unset.
type MailQuery struct {
	Sender        string
	Subject       string
	Body          string
	Provider      Provider
	Limit         int
	DateFrom      *time.Time
	DateTo        *time.Time
	HasAttachment bool
}

// FilesQuery is a resolved file-system search.
type FilesQuery struct {
	Query    string
	Kind     FileKind
	Limit    int
	DateFrom *time.Time
	DateTo   *time.Time
}

// SemanticQuery is a resolved vector-index search.
type SemanticQuery struct {
	Query  string
	Folder string
	Limit  int
}

// ChatQuery carries the original user text unmodified.
type ChatQuery struct {
	Text string
}

// ResolvedQuery is the validated, backend-ready output of the pipeline.
// Exactly one of the variant pointers matching Intent is set.
type ResolvedQuery struct {
	Intent    Intent
	Summarize bool
	Mail      *MailQuery
	Files     *FilesQuery
	Semantic  *SemanticQuery
	Chat      *ChatQuery
}

// EntityFields returns every non-empty entity string the query carries.
// The chat text is not an entity.
func (q ResolvedQuery) EntityFields() map[string]string {
	out := map[string]string{}
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	switch {
	case q.Mail != nil:
		put(ParamSender, q.Mail.Sender)
		put(ParamSubject, q.Mail.Subject)
		put(ParamBody, q.Mail.Body)
	case q.Files != nil:
		put(ParamQuery, q.Files.Query)
	case q.Semantic != nil:
		put(ParamQuery, q.Semantic.Query)
		put(ParamFolder, q.Semantic.Folder)
	}
	return out
}

// Params renders the query back into classifier-shaped parameters.
func (q ResolvedQuery) Params() Params {
	p := Params{}
	for k, v := range q.EntityFields() {
		p[k] = v
	}
	if q.Summarize {
		p[ParamSummarize] = true
	}
	switch {
	case q.Mail != nil:
		p[ParamProvider] = string(q.Mail.Provider)
		p[ParamLimit] = q.Mail.Limit
		if q.Mail.HasAttachment {
			p[ParamHasAttachment] = true
		}
	case q.Files != nil:
		p[ParamLimit] = q.Files.Limit
		if q.Files.Kind != FileKindAny {
			p[ParamKind] = string(q.Files.Kind)
		}
	case q.Semantic != nil:
		p[ParamLimit] = q.Semantic.Limit
	}
	return p
}

// Classifier parameter names.
const (
	ParamQuery         = "query"
	ParamSender        = "sender"
	ParamSubject       = "subject"
	ParamBody          = "body"
	ParamContent       = "content"
	ParamMessage       = "message"
	ParamName          = "name"
	ParamFolder        = "folder"
	ParamKind          = "kind"
	ParamProvider      = "provider"
	ParamLimit         = "limit"
	ParamDateFilter    = "date_filter"
	ParamHasAttachment = "has_attachment"
	ParamSummarize     = "summarize"
)
