package outlook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jasper/internal/connector"
	"jasper/internal/model"
)

// Search runs a KQL $search over the mailbox.
func (c *Connector) Search(ctx context.Context, p connector.Params) ([]model.SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := url.Values{}
	q.Set("$top", strconv.Itoa(limit))
	q.Set("$select", messageFields)
	if kql := BuildSearch(p); kql != "" {
		q.Set("$search", `"`+kql+`"`)
	}

	var list messageList
	if err := c.get(ctx, c.messagesPath()+"?"+q.Encode(), &list); err != nil {
		c.l.Errorf(ctx, "%s.Search: %v", LogPrefix, err)
		return nil, err
	}

	results := make([]model.SearchResult, 0, len(list.Value))
	for _, m := range list.Value {
		results = append(results, toResult(m))
	}
	return results, nil
}

// Open launches the message's Outlook web link.
func (c *Connector) Open(ctx context.Context, id string) (string, error) {
	var m message
	path := c.messagesPath() + "/" + url.PathEscape(id) + "?$select=webLink"
	if err := c.get(ctx, path, &m); err != nil {
		return "", err
	}
	if m.WebLink == "" {
		return "", connector.ErrItemNotFound
	}
	if err := c.open(m.WebLink); err != nil {
		return "", fmt.Errorf("outlook open: %w", err)
	}
	c.l.Infof(ctx, "%s.Open: opened %s", LogPrefix, id)
	return MsgOpened, nil
}

// BuildSearch renders search parameters as a KQL expression.
func BuildSearch(p connector.Params) string {
	var parts []string
	if p.Sender != "" {
		parts = append(parts, "from:"+kqlValue(p.Sender))
	}
	if p.Subject != "" {
		parts = append(parts, "subject:"+kqlValue(p.Subject))
	}
	if p.Body != "" {
		parts = append(parts, "body:"+kqlValue(p.Body))
	}
	if p.DateFrom != nil {
		parts = append(parts, "received>="+p.DateFrom.Format("2006-01-02"))
	}
	if p.DateTo != nil {
		parts = append(parts, "received<="+p.DateTo.Format("2006-01-02"))
	}
	if p.HasAttachment {
		parts = append(parts, "hasAttachments:true")
	}
	return strings.Join(parts, " AND ")
}

// kqlValue strips quotes, which would close the surrounding $search literal.
func kqlValue(s string) string {
	s = strings.NewReplacer(`"`, "", `'`, "").Replace(s)
	if strings.ContainsRune(s, ' ') {
		return "'" + s + "'"
	}
	return s
}

func (c *Connector) messagesPath() string {
	if c.mailbox == "" {
		return "/me/messages"
	}
	return "/users/" + url.PathEscape(c.mailbox) + "/messages"
}

func (c *Connector) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("outlook: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("outlook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return connector.ErrItemNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var ge graphError
		_ = json.NewDecoder(resp.Body).Decode(&ge)
		if ge.Error.Message != "" {
			return fmt.Errorf("outlook: status %d: %s", resp.StatusCode, ge.Error.Message)
		}
		return fmt.Errorf("outlook: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("outlook: decode response: %w", err)
	}
	return nil
}

func toResult(m message) model.SearchResult {
	date := m.ReceivedDateTime
	return model.SearchResult{
		Kind: model.ResultKindMail,
		ID:   m.ID,
		Fields: map[string]any{
			model.FieldSender:   m.sender(),
			model.FieldSubject:  m.Subject,
			model.FieldBody:     m.BodyPreview,
			model.FieldLink:     m.WebLink,
			model.FieldProvider: string(model.ProviderOutlook),
			"has_attachment":    m.HasAttachments,
		},
		Date: &date,
	}
}
