package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the loosely typed parameter mapping produced by the classifier.
type Params map[string]any

// String returns the trimmed string value of key. Scalars are formatted,
// anything else yields "".
func (p Params) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// FirstString returns the first non-empty string among keys.
func (p Params) FirstString(keys ...string) string {
	for _, k := range keys {
		if s := p.String(k); s != "" {
			return s
		}
	}
	return ""
}

// Bool interprets key as a boolean flag.
func (p Params) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			return true
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

// Int returns a positive integer for key, or def.
func (p Params) Int(key string, def int) int {
	var n int
	switch v := p[key].(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}
	if n <= 0 {
		return def
	}
	return n
}

// Clone returns a shallow copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// With returns a copy of p with key set to value.
func (p Params) With(key string, value any) Params {
	out := p.Clone()
	out[key] = value
	return out
}

// RawClassification is the classifier's best-effort guess. Intent is "" when
// the classifier returned null.
type RawClassification struct {
	Intent string
	Params Params
}

func (c RawClassification) String() string {
	return fmt.Sprintf("intent=%q params=%v", c.Intent, map[string]any(c.Params))
}
