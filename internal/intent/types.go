package intent

import (
	"strings"

	"jasper/internal/model"
)

// State is what the rules read and rewrite. Rules never mutate a State in
// place; Apply returns the next one.
type State struct {
	Text   string
	Lower  string
	Intent model.Intent
	Params model.Params
}

func newState(text string, raw model.RawClassification) State {
	params := raw.Params.Clone()
	if params == nil {
		params = model.Params{}
	}
	return State{
		Text:   text,
		Lower:  strings.ToLower(text),
		Intent: model.ParseIntent(raw.Intent),
		Params: params,
	}
}

// Rule is one row of the override table.
type Rule struct {
	Name     string
	Priority int
	// Group names an exclusive group; "" means the rule is independent.
	Group string
	Match func(State) bool
	Apply func(State) State
}

// Conflict records two rules whose outcomes disagree for the same input.
type Conflict struct {
	Winner     string
	Other      string
	WinnerWant model.Intent
	OtherWant  model.Intent
}

// Decision is the engine's output and its trace.
type Decision struct {
	Intent    model.Intent
	Params    model.Params
	Fired     []string
	Conflicts []Conflict
}

// Ambiguous reports whether two guards pulled the request in different directions.
func (d Decision) Ambiguous() bool {
	return len(d.Conflicts) > 0
}

// Overridden reports whether any guard replaced the classifier's intent.
func (d Decision) Overridden(original model.Intent) bool {
	return d.Intent != original
}
