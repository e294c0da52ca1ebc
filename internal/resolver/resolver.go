package resolver

import (
	"jasper/internal/intent"
	"jasper/internal/model"
	"jasper/pkg/datemath"
)

type implResolver struct {
	engine intent.Engine
	parser *datemath.Parser
	opts   Options
}

// Resolve is a pure function of (text, raw) given a fixed clock.
func (r *implResolver) Resolve(text string, raw model.RawClassification) Result {
	d := r.engine.Evaluate(text, raw)

	q := model.ResolvedQuery{
		Intent:    d.Intent,
		Summarize: ShouldSummarize(text, raw.Params.Bool(model.ParamSummarize)),
	}
	switch d.Intent {
	case model.IntentMail:
		q.Mail = r.resolveMail(text, d.Params)
	case model.IntentFiles:
		q.Files = r.resolveFiles(text, d.Params)
	case model.IntentSemantic:
		q.Semantic = resolveSemantic(text, d.Params)
	default:
		q.Intent = model.IntentChat
		q.Chat = &model.ChatQuery{Text: text}
	}

	return Result{Query: enforceLiteral(text, q), Decision: d}
}

// ShouldSummarize honors the classifier's summarize flag only when the user
// asked for a summary in so many words.
func ShouldSummarize(text string, requested bool) bool {
	return requested && containsAny(lower(text), summarizeWords)
}

// dateFilter returns the classifier's date phrase when the user actually wrote
// it, otherwise "".
func dateFilter(text string, p model.Params) string {
	f := p.String(model.ParamDateFilter)
	if f == "" || !containsFold(text, f) {
		return ""
	}
	return f
}

func (r *implResolver) extractRange(text, filter string) dateRange {
	src := filter
	if src == "" {
		src = text
	}
	rng := r.parser.ExtractRange(src, r.opts.Now())
	return dateRange{from: rng.From, to: rng.To}
}
