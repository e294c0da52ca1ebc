package model

import "strings"

// Intent is the coarse category of a request.
type Intent string

const (
	IntentUnresolved Intent = ""
	IntentMail       Intent = "mail"
	IntentFiles      Intent = "files"
	IntentSemantic   Intent = "semantic"
	IntentChat       Intent = "chat"
)

// ParseIntent maps a classifier value to an Intent. Anything unknown is unresolved.
func ParseIntent(s string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(s))) {
	case IntentMail:
		return IntentMail
	case IntentFiles:
		return IntentFiles
	case IntentSemantic:
		return IntentSemantic
	case IntentChat:
		return IntentChat
	default:
		return IntentUnresolved
	}
}

// IsSearch reports whether the intent is dispatched to a connector.
func (i Intent) IsSearch() bool {
	return i == IntentMail || i == IntentFiles || i == IntentSemantic
}

// Provider selects the mail backend.
type Provider string

const (
	ProviderGmail   Provider = "GMAIL"
	ProviderOutlook Provider = "OUTLOOK"
	ProviderFiles   Provider = "FILES"
)

// ParseProvider returns the mail provider named by s.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(strings.ToUpper(strings.TrimSpace(s))) {
	case ProviderGmail:
		return ProviderGmail, true
	case ProviderOutlook:
		return ProviderOutlook, true
	default:
		return "", false
	}
}

// FileKind restricts a files search. The zero value matches anything.
type FileKind string

const (
	FileKindAny    FileKind = ""
	FileKindFile   FileKind = "file"
	FileKindFolder FileKind = "folder"
)
