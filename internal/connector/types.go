package connector

import (
	"time"

	"jasper/internal/model"
)

// Key selects a connector in a Registry.
type Key string

const (
	KeyMailGmail   Key = "mail_gmail"
	KeyMailOutlook Key = "mail_outlook"
	KeyFiles       Key = "files"
	KeySemantic    Key = "semantic"
)

// Params is the uniform search contract every connector accepts. Backends
// ignore the fields they do not support.
type Params struct {
	Sender        string
	Subject       string
	Body          string
	Query         string
	Folder        string
	Kind          model.FileKind
	DateFrom      *time.Time
	DateTo        *time.Time
	HasAttachment bool
	Limit         int
}

// ParamsFor flattens a resolved query into search parameters.
func ParamsFor(q model.ResolvedQuery) Params {
	switch {
	case q.Mail != nil:
		return Params{
			Sender:        q.Mail.Sender,
			Subject:       q.Mail.Subject,
			Body:          q.Mail.Body,
			DateFrom:      q.Mail.DateFrom,
			DateTo:        q.Mail.DateTo,
			HasAttachment: q.Mail.HasAttachment,
			Limit:         q.Mail.Limit,
		}
	case q.Files != nil:
		return Params{
			Query:    q.Files.Query,
			Kind:     q.Files.Kind,
			DateFrom: q.Files.DateFrom,
			DateTo:   q.Files.DateTo,
			Limit:    q.Files.Limit,
		}
	case q.Semantic != nil:
		return Params{
			Query:  q.Semantic.Query,
			Folder: q.Semantic.Folder,
			Limit:  q.Semantic.Limit,
		}
	}
	return Params{}
}

// MailKey returns the registry key for a mail provider.
func MailKey(p model.Provider) Key {
	if p == model.ProviderOutlook {
		return KeyMailOutlook
	}
	return KeyMailGmail
}

// KeyFor returns the registry key a resolved query dispatches to.
func KeyFor(q model.ResolvedQuery) (Key, bool) {
	switch q.Intent {
	case model.IntentMail:
		if q.Mail == nil {
			return KeyMailGmail, true
		}
		return MailKey(q.Mail.Provider), true
	case model.IntentFiles:
		return KeyFiles, true
	case model.IntentSemantic:
		return KeySemantic, true
	}
	return "", false
}
