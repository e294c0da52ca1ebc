package telegram

import (
	"fmt"
	"strings"

	"jasper/internal/assistant"
	"jasper/internal/model"
)

// formatResponse renders a response as plain chat text.
func formatResponse(resp assistant.Response) string {
	switch resp.Type {
	case assistant.ResponseError:
		return "Error: " + resp.Content
	case assistant.ResponseResults:
	default:
		return resp.Content
	}

	var b strings.Builder
	b.WriteString(resp.Content)
	for i, r := range resp.Data {
		if i == maxListedResults {
			fmt.Fprintf(&b, "\n\n...and %d more", len(resp.Data)-maxListedResults)
			break
		}
		b.WriteString("\n\n")
		b.WriteString(formatResult(i+1, r))
	}
	return b.String()
}

func formatResult(n int, r model.SearchResult) string {
	var line string
	switch r.Kind {
	case model.ResultKindMail:
		line = fmt.Sprintf("%d. %s\n   From: %s", n, orDefault(r.Field(model.FieldSubject), "(no subject)"), r.Field(model.FieldSender))
	default:
		line = fmt.Sprintf("%d. %s\n   %s", n, orDefault(r.Field(model.FieldName), r.Field(model.FieldFilename)), r.Field(model.FieldPath))
	}
	if r.Date != nil {
		line += "\n   " + r.Date.Format("2006-01-02 15:04")
	}
	if r.Summary != "" {
		line += "\n   " + r.Summary
	}
	return line
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
