package datemath

import "regexp"

// Unit lengths are deliberate approximations, not calendar arithmetic.
var unitDays = map[string]int{
	"day":   1,
	"week":  7,
	"month": 30,
	"mont":  30,
	"year":  365,
}

const (
	absolutePhrase = `\d{1,2}\.\d{1,2}\.\d{4}|\d{4}-\d{1,2}-\d{1,2}`
	relativePhrase = `(?:last|past|this|current|lat|pst)\s+(?:\d+\s+)?(?:day|week|month|year|mont)s?|yesterday`
	datePhrase     = `(` + absolutePhrase + `|` + relativePhrase + `)`
)

var (
	singleDayRe = regexp.MustCompile(`(?i)\b(?:at|on)\s+` + datePhrase)
	rangeRe     = regexp.MustCompile(`(?i)\b(?:from|since)\s+` + datePhrase + `\s+(?:to|until|before)\s+` + datePhrase)
	sinceRe     = regexp.MustCompile(`(?i)\b(?:since|from)\s+` + datePhrase)
	untilRe     = regexp.MustCompile(`(?i)\b(?:to|until|before)\s+` + datePhrase)
	bareRe      = regexp.MustCompile(`(?i)\b` + datePhrase)
	leadingRe   = regexp.MustCompile(`(?i)^\s*` + datePhrase + `\b`)

	dmyRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	ymdRe = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)

	countRe     = regexp.MustCompile(`(?i)\b(last|past|this|current|lat|pst)\s+(\d+)\s+(day|week|month|year|mont)s?`)
	singularRe  = regexp.MustCompile(`(?i)\b(last|past|this|current|lat|pst)\s+(day|week|month|year|mont)s?\b`)
	relativeRe  = regexp.MustCompile(`(?i)\b(?:last|past|this|current)\s+(?:\d+\s+)?(?:day|week|month|year|mont)s?\b`)
	yesterdayRe = regexp.MustCompile(`(?i)\byesterday\b`)
)
