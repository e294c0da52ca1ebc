package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"jasper/internal/model"
)

func lower(s string) string {
	return strings.ToLower(s)
}

func containsFold(text, s string) bool {
	return strings.Contains(lower(text), lower(s))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func isOneOf(s string, words []string) bool {
	s = lower(strings.TrimSpace(s))
	for _, w := range words {
		if s == w {
			return true
		}
	}
	return false
}

func allIn(tokens, words []string) bool {
	for _, t := range tokens {
		if !isOneOf(t, words) {
			return false
		}
	}
	return true
}

// foldMarks lowercases s and strips combining marks ("Šumandl" -> "sumandl").
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return lower(s)
	}
	return lower(out)
}

// recoverAccents replaces a candidate the classifier stripped of diacritics
// with the spelling the user actually typed.
func recoverAccents(candidate, text string) string {
	if candidate == "" || containsFold(text, candidate) {
		return candidate
	}
	target := foldMarks(candidate)
	n := len(strings.Fields(candidate))
	words := strings.Fields(text)
	for i := 0; i+n <= len(words); i++ {
		span := strings.Join(words[i:i+n], " ")
		if foldMarks(span) == target {
			return span
		}
	}
	return candidate
}

// enforceLiteral clears every entity string the user did not write.
func enforceLiteral(text string, q model.ResolvedQuery) model.ResolvedQuery {
	keep := func(s string) string {
		if s == "" || !containsFold(text, s) {
			return ""
		}
		return s
	}
	switch {
	case q.Mail != nil:
		m := *q.Mail
		m.Sender, m.Subject, m.Body = keep(m.Sender), keep(m.Subject), keep(m.Body)
		q.Mail = &m
	case q.Files != nil:
		f := *q.Files
		f.Query = keep(f.Query)
		q.Files = &f
	case q.Semantic != nil:
		s := *q.Semantic
		s.Query, s.Folder = keep(s.Query), keep(s.Folder)
		q.Semantic = &s
	}
	return q
}
