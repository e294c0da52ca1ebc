package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"

	"jasper/pkg/htmltext"
)

// Search lists messages matching req.Query and fetches each one in full,
// newest first as returned by the API.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Message, error) {
	call := c.service.Users.Messages.List(c.user).Q(req.Query).Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	list, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msg, err := c.Get(ctx, ref.Id)
		if err != nil {
			return nil, err
		}
		out = append(out, *msg)
	}
	return out, nil
}

// Get fetches one message with its decoded plain-text body.
func (c *Client) Get(ctx context.Context, id string) (*Message, error) {
	m, err := c.service.Users.Messages.Get(c.user, id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}
	return convert(m), nil
}

func convert(m *gmailapi.Message) *Message {
	msg := &Message{
		ID:       m.Id,
		ThreadID: m.ThreadId,
		Snippet:  m.Snippet,
		Date:     time.UnixMilli(m.InternalDate),
		Link:     "https://mail.google.com/mail/u/0/#all/" + m.Id,
	}
	if m.Payload == nil {
		msg.Body = m.Snippet
		return msg
	}
	for _, h := range m.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			msg.From = h.Value
		case "subject":
			msg.Subject = h.Value
		}
	}

	var plain, html string
	walkParts(m.Payload, func(p *gmailapi.MessagePart) {
		if p.Filename != "" {
			msg.HasAttachment = true
			return
		}
		if p.Body == nil || p.Body.Data == "" {
			return
		}
		switch {
		case strings.HasPrefix(p.MimeType, "text/plain") && plain == "":
			plain = decodeBody(p.Body.Data)
		case strings.HasPrefix(p.MimeType, "text/html") && html == "":
			html = decodeBody(p.Body.Data)
		}
	})
	switch {
	case plain != "":
		msg.Body = plain
	case html != "":
		msg.Body = htmltext.Text(html)
	default:
		msg.Body = m.Snippet
	}
	return msg
}

func walkParts(p *gmailapi.MessagePart, fn func(*gmailapi.MessagePart)) {
	fn(p)
	for _, child := range p.Parts {
		walkParts(child, fn)
	}
}

func decodeBody(data string) string {
	if b, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(b)
	}
	if b, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(b)
	}
	return ""
}
