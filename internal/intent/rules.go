package intent

import (
	"strings"

	"jasper/internal/model"
)

// DefaultRules returns the override table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     RuleContentShield,
			Priority: 10,
			Group:    groupTopic,
			Match:    func(s State) bool { return containsAny(s.Lower, contentPhrases) },
			Apply:    applyContentShield,
		},
		{
			Name:     RuleChatTopic,
			Priority: 20,
			Group:    groupTopic,
			Match: func(s State) bool {
				return containsAny(s.Lower, chatTopicWords) && !containsAny(s.Lower, searchHintWords)
			},
			Apply: force(model.IntentChat),
		},
		{
			Name:     RuleFileKeyword,
			Priority: 30,
			Group:    groupKeyword,
			Match:    func(s State) bool { return containsAny(s.Lower, fileWords) },
			Apply:    applyFileKeyword,
		},
		{
			Name:     RuleMailKeyword,
			Priority: 40,
			Group:    groupKeyword,
			Match:    matchMailKeyword,
			Apply:    force(model.IntentMail),
		},
		{
			Name:     RuleDefaultSemantic,
			Priority: 100,
			Match:    func(s State) bool { return s.Intent == model.IntentUnresolved },
			Apply: func(s State) State {
				s.Intent = model.IntentSemantic
				s.Params = model.Params{model.ParamQuery: s.Text}
				return s
			},
		},
	}
}

// applyContentShield searches the text following the last content phrase.
func applyContentShield(s State) State {
	for _, phrase := range contentPhrases {
		i := strings.LastIndex(s.Lower, phrase)
		if i < 0 {
			continue
		}
		rest := sliceOriginal(s, i+len(phrase))
		rest = strings.Trim(strings.TrimSpace(rest), `'"`)
		s.Intent = model.IntentSemantic
		s.Params = model.Params{model.ParamQuery: strings.TrimSpace(rest)}
		return s
	}
	return s
}

func applyFileKeyword(s State) State {
	switch {
	case containsAny(s.Lower, fileContentWords):
		s.Intent = model.IntentSemantic
	case containsAny(s.Lower, fileMailWords):
		s.Intent = model.IntentMail
	default:
		s.Intent = model.IntentFiles
	}
	return s
}

func matchMailKeyword(s State) bool {
	if !containsAny(s.Lower, mailWords) {
		return false
	}
	if s.Intent != model.IntentFiles && s.Intent != model.IntentUnresolved {
		return false
	}
	return containsAny(s.Lower, strongMailWords) ||
		(s.Intent == model.IntentUnresolved && containsAny(s.Lower, weakMailWords))
}

func force(i model.Intent) func(State) State {
	return func(s State) State {
		s.Intent = i
		return s
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// sliceOriginal returns the original text from a byte offset found in the
// lowercased copy, keeping the user's casing when the two line up.
func sliceOriginal(s State, offset int) string {
	if len(s.Lower) == len(s.Text) {
		return s.Text[offset:]
	}
	return s.Lower[offset:]
}
