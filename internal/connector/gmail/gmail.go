package gmail

import (
	"context"
	"fmt"
	"strings"

	"jasper/internal/connector"
	"jasper/internal/model"
	"jasper/pkg/gmail"
)

// Search translates p into a Gmail query and normalizes the hits.
func (c *Connector) Search(ctx context.Context, p connector.Params) ([]model.SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := BuildQuery(p)
	c.l.Debugf(ctx, "%s.Search: q=%q", LogPrefix, q)

	msgs, err := c.client.Search(ctx, gmail.SearchRequest{Query: q, MaxResults: int64(limit)})
	if err != nil {
		c.l.Errorf(ctx, "%s.Search: %v", LogPrefix, err)
		return nil, fmt.Errorf("gmail search: %w", err)
	}

	results := make([]model.SearchResult, 0, len(msgs))
	for _, m := range msgs {
		results = append(results, toResult(m))
	}
	return results, nil
}

// Open is not supported: Gmail items are shown, not launched.
func (c *Connector) Open(ctx context.Context, id string) (string, error) {
	return "", connector.ErrOpenUnsupported
}

// BuildQuery renders search parameters with Gmail search operators. The
// before: operator is exclusive, so the upper bound moves one day forward.
func BuildQuery(p connector.Params) string {
	var parts []string
	if p.Sender != "" {
		parts = append(parts, "from:("+p.Sender+")")
	}
	if p.Subject != "" {
		parts = append(parts, "subject:("+p.Subject+")")
	}
	if p.Body != "" {
		parts = append(parts, quote(p.Body))
	}
	if p.DateFrom != nil {
		parts = append(parts, "after:"+p.DateFrom.Format(gmailDateLayout))
	}
	if p.DateTo != nil {
		parts = append(parts, "before:"+p.DateTo.AddDate(0, 0, 1).Format(gmailDateLayout))
	}
	if p.HasAttachment {
		parts = append(parts, "has:attachment")
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}

func toResult(m gmail.Message) model.SearchResult {
	date := m.Date
	return model.SearchResult{
		Kind: model.ResultKindMail,
		ID:   m.ID,
		Fields: map[string]any{
			model.FieldSender:   m.From,
			model.FieldSubject:  m.Subject,
			model.FieldBody:     m.Body,
			model.FieldLink:     m.Link,
			model.FieldProvider: string(model.ProviderGmail),
			"has_attachment":    m.HasAttachment,
		},
		Date: &date,
	}
}
