package intent

import "jasper/internal/model"

// Engine applies deterministic guard rules on top of the classifier's intent.
type Engine interface {
	Evaluate(text string, raw model.RawClassification) Decision
	Rules() []Rule
}

// New returns an engine over rules, sorted by priority. With no rules the
// default table is used.
func New(rules ...Rule) Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return newRuleEngine(rules)
}
