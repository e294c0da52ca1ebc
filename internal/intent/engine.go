package intent

import (
	"sort"

	"jasper/internal/model"
)

type ruleEngine struct {
	rules []Rule
}

func newRuleEngine(rules []Rule) *ruleEngine {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return &ruleEngine{rules: sorted}
}

func (e *ruleEngine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Evaluate runs the table top to bottom. Within an exclusive group the first
// matching rule fires; a later member that would also have matched, and would
// have chosen a different intent, is recorded as a conflict. Independent
// rules that fire with different intents are recorded the same way.
func (e *ruleEngine) Evaluate(text string, raw model.RawClassification) Decision {
	s := newState(text, raw)

	var d Decision
	var forced []firing
	winners := map[string]firing{}
	for _, r := range e.rules {
		if r.Group != "" {
			if w, taken := winners[r.Group]; taken {
				if r.Match(w.before) {
					if want := r.Apply(w.before).Intent; want != w.want {
						d.Conflicts = append(d.Conflicts, Conflict{
							Winner: w.name, Other: r.Name, WinnerWant: w.want, OtherWant: want,
						})
					}
				}
				continue
			}
		}
		if !r.Match(s) {
			continue
		}

		before := s
		s = r.Apply(s)
		f := firing{name: r.Name, before: before, want: s.Intent}
		d.Fired = append(d.Fired, r.Name)
		if r.Group != "" {
			winners[r.Group] = f
		}
		for _, prev := range forced {
			if prev.want != f.want {
				d.Conflicts = append(d.Conflicts, Conflict{
					Winner: f.name, Other: prev.name, WinnerWant: f.want, OtherWant: prev.want,
				})
			}
		}
		forced = append(forced, f)
	}

	d.Intent = s.Intent
	d.Params = s.Params
	return d
}

type firing struct {
	name   string
	before State
	want   model.Intent
}
