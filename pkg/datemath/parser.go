package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser turns absolute and relative date phrases into concrete times.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Zagreb"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseAbsolute parses the first DD.MM.YYYY or YYYY-MM-DD date in s.
// Impossible calendar dates such as 31.02.2025 are rejected.
func (p *Parser) ParseAbsolute(s string) (time.Time, bool) {
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		if t, ok := p.date(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := ymdRe.FindStringSubmatch(s); m != nil {
		if t, ok := p.date(m[1], m[2], m[3]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseRelative resolves the first relative phrase in s against baseTime.
//
//	"last 3 days"  -> baseTime - 3 days
//	"last week"    -> baseTime - 7 days
//	"this month"   -> midnight on the 1st of the current month
//	"yesterday"    -> yesterday's midnight
func (p *Parser) ParseRelative(s string, baseTime time.Time) (time.Time, bool) {
	baseTime = baseTime.In(p.location)

	if m := countRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
		return baseTime.AddDate(0, 0, -n*unitDays[strings.ToLower(m[3])]), true
	}

	if m := singularRe.FindStringSubmatch(s); m != nil {
		anchor := strings.ToLower(m[1])
		unit := strings.ToLower(m[2])
		if anchor == "this" || anchor == "current" {
			return p.startOfPeriod(unit, baseTime), true
		}
		return baseTime.AddDate(0, 0, -unitDays[unit]), true
	}

	if yesterdayRe.MatchString(s) {
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), true
	}

	return time.Time{}, false
}

// Parse tries an absolute date first, then a relative one.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, bool) {
	if t, ok := p.ParseAbsolute(phrase); ok {
		return t, true
	}
	return p.ParseRelative(phrase, baseTime)
}

func (p *Parser) date(year, month, day string) (time.Time, bool) {
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, p.location)
	// time.Date normalizes overflow; a round trip catches it.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func (p *Parser) startOfPeriod(unit string, t time.Time) time.Time {
	day := p.startOfDay(t)
	switch unit {
	case "week":
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case "month", "mont":
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, p.location)
	case "year":
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, p.location)
	default:
		return day
	}
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
