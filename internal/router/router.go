package router

import (
	"context"
	"errors"

	"jasper/pkg/llmprovider"
)

// Classify asks the classifier for an intent and sanitizes the answer.
// It never fails: any problem becomes a chat fallback.
func (r *SemanticRouter) Classify(ctx context.Context, text string) Classification {
	raw := r.generate(ctx, text)

	cls, err := Sanitize(raw)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, MsgSanitizeFailed, err)
		return Classification{Fallback: true, Reason: err}
	}

	r.l.Infof(ctx, "%s: %s", LogPrefixClassify, cls)
	return Classification{Raw: cls}
}

// generate runs the classifier call with its own deadline. The caller's
// cancellation does not reach it; only the timeout does.
func (r *SemanticRouter) generate(ctx context.Context, text string) string {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	req := llmprovider.NewPrompt(PromptClassifierSystem, text)
	req.Temperature = ClassifierTemperature
	req.StopSequences = ClassifierStopSequences
	req.ResponseFormat = llmprovider.FormatJSON

	resp, err := r.llm.GenerateContent(callCtx, req)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			r.l.Warnf(ctx, "%s: %s after %s", LogPrefixClassify, MsgTimeout, r.timeout)
		} else {
			r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, MsgLLMCallFailed, err)
		}
		return ""
	}
	return resp.Text()
}
