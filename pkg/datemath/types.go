package datemath

import "time"

// Range is a resolved date interval. Either end may be unset.
// A single-day expression yields From == To.
type Range struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither end of the range is set.
func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

// ExpressionKind classifies a date phrase.
type ExpressionKind int

const (
	KindUnknown ExpressionKind = iota
	KindAbsolute
	KindRelative
)

// Expression is a date phrase found in free text.
type Expression struct {
	Text string
	Kind ExpressionKind
}
