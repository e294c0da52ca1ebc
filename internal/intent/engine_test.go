package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jasper/internal/model"
)

func raw(intent string, params model.Params) model.RawClassification {
	return model.RawClassification{Intent: intent, Params: params}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		raw        model.RawClassification
		wantIntent model.Intent
		wantQuery  string
		wantFired  []string
	}{
		{
			name:       "weather forced to chat",
			text:       "check the weather",
			raw:        raw("mail", model.Params{"sender": "weather"}),
			wantIntent: model.IntentChat,
			wantFired:  []string{RuleChatTopic},
		},
		{
			name:       "chat topic with mail hint keeps classifier",
			text:       "news from ana in my email",
			raw:        raw("mail", nil),
			wantIntent: model.IntentMail,
		},
		{
			name:       "content shield",
			text:       "search inside 'quarterly plan'",
			raw:        raw("files", model.Params{"query": "plan"}),
			wantIntent: model.IntentSemantic,
			wantQuery:  "quarterly plan",
			wantFired:  []string{RuleContentShield},
		},
		{
			name:       "content shield keeps user casing",
			text:       "Search for content Invoice Q3",
			raw:        raw("", nil),
			wantIntent: model.IntentSemantic,
			wantQuery:  "Invoice Q3",
			wantFired:  []string{RuleContentShield},
		},
		{
			name:       "folder request forced to files",
			text:       "find folder budget",
			raw:        raw("semantic", model.Params{"query": "budget"}),
			wantIntent: model.IntentFiles,
			wantQuery:  "budget",
			wantFired:  []string{RuleFileKeyword},
		},
		{
			name:       "file with content words goes semantic",
			text:       "files about the migration",
			raw:        raw("files", model.Params{"query": "migration"}),
			wantIntent: model.IntentSemantic,
			wantQuery:  "migration",
			wantFired:  []string{RuleFileKeyword},
		},
		{
			name:       "file with mail words goes mail",
			text:       "gmail file from ana",
			raw:        raw("files", nil),
			wantIntent: model.IntentMail,
			wantFired:  []string{RuleFileKeyword},
		},
		{
			name:       "strong mail keyword overrides files",
			text:       "search outlook for sumandl",
			raw:        raw("files", nil),
			wantIntent: model.IntentMail,
			wantFired:  []string{RuleMailKeyword},
		},
		{
			name:       "weak mail keyword only fills an unset intent",
			text:       "latest mail",
			raw:        raw("", nil),
			wantIntent: model.IntentMail,
			wantFired:  []string{RuleMailKeyword},
		},
		{
			name:       "weak mail keyword leaves files alone",
			text:       "latest mail",
			raw:        raw("files", model.Params{"query": "latest"}),
			wantIntent: model.IntentFiles,
			wantQuery:  "latest",
		},
		{
			name:       "mail guard never overrides chat",
			text:       "a greeting from me",
			raw:        raw("chat", nil),
			wantIntent: model.IntentChat,
		},
		{
			name:       "unknown intent defaults to semantic over the full text",
			text:       "quarterly numbers",
			raw:        raw("calendar", model.Params{"query": "numbers"}),
			wantIntent: model.IntentSemantic,
			wantQuery:  "quarterly numbers",
			wantFired:  []string{RuleDefaultSemantic},
		},
		{
			name:       "null intent defaults to semantic",
			text:       "roadmap",
			raw:        raw("", nil),
			wantIntent: model.IntentSemantic,
			wantQuery:  "roadmap",
			wantFired:  []string{RuleDefaultSemantic},
		},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.Evaluate(tt.text, tt.raw)
			assert.Equal(t, tt.wantIntent, d.Intent)
			assert.Equal(t, tt.wantQuery, d.Params.String(model.ParamQuery))
			assert.Equal(t, tt.wantFired, d.Fired)
		})
	}
}

// "find in file" trips the content shield, then the file guard sees "file"
// with no content or mail words and pulls the request back to a name search.
func TestEvaluate_AmbiguousShieldAndFileGuard(t *testing.T) {
	d := New().Evaluate("find in file budget", raw("semantic", nil))

	assert.Equal(t, []string{RuleContentShield, RuleFileKeyword}, d.Fired)
	assert.Equal(t, model.IntentFiles, d.Intent)
	assert.Equal(t, "budget", d.Params.String(model.ParamQuery))

	require.True(t, d.Ambiguous())
	assert.Equal(t, Conflict{
		Winner:     RuleFileKeyword,
		Other:      RuleContentShield,
		WinnerWant: model.IntentFiles,
		OtherWant:  model.IntentSemantic,
	}, d.Conflicts[0])
}

func TestEvaluate_AmbiguousExclusiveGroup(t *testing.T) {
	// Both topic rules match; the shield wins and the chat guard is suppressed.
	d := New().Evaluate("search inside news", raw("chat", nil))

	assert.Equal(t, model.IntentSemantic, d.Intent)
	assert.Equal(t, "news", d.Params.String(model.ParamQuery))
	require.Len(t, d.Conflicts, 1)
	assert.Equal(t, RuleContentShield, d.Conflicts[0].Winner)
	assert.Equal(t, RuleChatTopic, d.Conflicts[0].Other)
}

func TestEvaluate_AgreeingRulesAreNotAmbiguous(t *testing.T) {
	d := New().Evaluate("search inside the file for invoices", raw("files", nil))

	assert.Equal(t, model.IntentSemantic, d.Intent)
	assert.Equal(t, []string{RuleContentShield, RuleFileKeyword}, d.Fired)
	assert.False(t, d.Ambiguous())
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	params := model.Params{"query": "x"}
	New().Evaluate("search inside y", raw("files", params))
	assert.Equal(t, model.Params{"query": "x"}, params)
}

func TestNew_SortsByPriority(t *testing.T) {
	e := New(
		Rule{Name: "b", Priority: 2, Match: func(State) bool { return true }, Apply: force(model.IntentFiles)},
		Rule{Name: "a", Priority: 1, Match: func(State) bool { return true }, Apply: force(model.IntentMail)},
	)

	rules := e.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Name)

	d := e.Evaluate("anything", raw("", nil))
	assert.Equal(t, model.IntentFiles, d.Intent)
	assert.Equal(t, []string{"a", "b"}, d.Fired)
}
