package model

import "time"

// ResultKind identifies which backend produced a result.
type ResultKind string

const (
	ResultKindMail     ResultKind = "mail"
	ResultKindFile     ResultKind = "file"
	ResultKindSemantic ResultKind = "semantic"
)

// Well-known result field names.
const (
	FieldSender   = "sender"
	FieldSubject  = "subject"
	FieldBody     = "body"
	FieldName     = "name"
	FieldPath     = "path"
	FieldType     = "type"
	FieldContent  = "content"
	FieldFilename = "filename"
	FieldScore    = "score"
	FieldProvider = "provider"
	FieldLink     = "link"
)

// SearchResult is a backend-agnostic search hit.
type SearchResult struct {
	Kind    ResultKind     `json:"kind"`
	ID      string         `json:"id,omitempty"`
	Fields  map[string]any `json:"fields"`
	Date    *time.Time     `json:"date,omitempty"`
	Summary string         `json:"summary,omitempty"`
}

// Field returns a string field or "".
func (r SearchResult) Field(name string) string {
	s, _ := r.Fields[name].(string)
	return s
}

// Text returns the best available body text of the result.
func (r SearchResult) Text() string {
	for _, k := range []string{FieldBody, FieldContent} {
		if s := r.Field(k); s != "" {
			return s
		}
	}
	return ""
}

// IsFolder reports whether a file result points at a directory.
func (r SearchResult) IsFolder() bool {
	return r.Field(FieldType) == string(FileKindFolder)
}
