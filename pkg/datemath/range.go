package datemath

import (
	"regexp"
	"strings"
	"time"
)

// ExtractRange finds the date interval described anywhere in text.
//
// Order of precedence:
//  1. "at|on <date>" gives a single-day range and stops.
//  2. "from|since <date> to|until|before <date>" gives both ends.
//  3. "since|from <date>" and "to|until|before <date>" set one end each.
//  4. A bare absolute date sets both ends; a bare relative phrase sets From only.
func (p *Parser) ExtractRange(text string, baseTime time.Time) Range {
	if m := singleDayRe.FindStringSubmatch(text); m != nil {
		if t, ok := p.Parse(m[1], baseTime); ok {
			return Range{From: &t, To: ptr(t)}
		}
	}

	var r Range
	if m := rangeRe.FindStringSubmatch(text); m != nil {
		if t, ok := p.Parse(m[1], baseTime); ok {
			r.From = &t
		}
		if t, ok := p.Parse(m[2], baseTime); ok {
			r.To = &t
		}
	}

	if r.IsZero() {
		if m := sinceRe.FindStringSubmatch(text); m != nil {
			if t, ok := p.Parse(m[1], baseTime); ok {
				r.From = &t
			}
		}
		if m := untilRe.FindStringSubmatch(text); m != nil {
			if t, ok := p.Parse(m[1], baseTime); ok {
				r.To = &t
			}
		}
	}

	if r.IsZero() {
		if t, ok := p.ParseAbsolute(text); ok {
			return Range{From: &t, To: ptr(t)}
		}
		if t, ok := p.ParseRelative(text, baseTime); ok {
			r.From = &t
		}
	}

	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		r.From, r.To = r.To, r.From
	}
	return r
}

// FindRelative returns the first relative date phrase in text ("last 3 days",
// "this month"), or "" when there is none.
func FindRelative(text string) string {
	return relativeRe.FindString(text)
}

// FindExpressions lists every date phrase in text in order of appearance.
func FindExpressions(text string) []Expression {
	matches := bareRe.FindAllStringSubmatch(text, -1)
	out := make([]Expression, 0, len(matches))
	for _, m := range matches {
		kind := KindRelative
		if dmyRe.MatchString(m[1]) || ymdRe.MatchString(m[1]) {
			kind = KindAbsolute
		}
		out = append(out, Expression{Text: m[1], Kind: kind})
	}
	return out
}

// StartsWithDate reports whether s begins with a date phrase.
func StartsWithDate(s string) bool {
	return leadingRe.MatchString(s)
}

var cleanPatterns = []*regexp.Regexp{rangeRe, singleDayRe, sinceRe, untilRe, bareRe}

// CleanDateString removes every date phrase, together with its leading
// keyword, from s and collapses the remaining whitespace.
func CleanDateString(s string) string {
	for _, re := range cleanPatterns {
		s = re.ReplaceAllString(s, "")
	}
	return strings.Join(strings.Fields(s), " ")
}

func ptr(t time.Time) *time.Time {
	return &t
}
