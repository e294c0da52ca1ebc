package usecase

import (
	"context"
	"fmt"
	"strings"

	"jasper/internal/assistant"
	"jasper/internal/connector"
	"jasper/internal/model"
)

// Query runs the full pipeline for one request.
func (uc *implUseCase) Query(ctx context.Context, input assistant.QueryInput) (assistant.Response, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.Response{}, assistant.ErrEmptyQuery
	}
	uc.l.Infof(ctx, "%s.Query: input=%q", LogPrefix, text)

	cls := uc.router.Classify(ctx, text)
	if cls.Fallback {
		uc.l.Infof(ctx, "%s.Query: classifier fallback: %v", LogPrefix, cls.Reason)
		return uc.chatResponse(ctx, text), nil
	}

	res := uc.resolver.Resolve(text, cls.Raw)
	if res.Decision.Ambiguous() {
		for _, c := range res.Decision.Conflicts {
			uc.l.Warnf(ctx, "%s.Query: ambiguous guards %s and %s, kept %s", LogPrefix, c.Winner, c.Other, c.WinnerWant)
		}
	}
	q := res.Query
	uc.l.Infof(ctx, "%s.Query: intent=%s fired=%v params=%v", LogPrefix, q.Intent, res.Decision.Fired, map[string]any(q.Params()))

	if q.Intent == model.IntentChat {
		return uc.chatResponse(ctx, text), nil
	}

	key, results, err := uc.registry.Dispatch(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "%s.Query: %s search failed: %v", LogPrefix, key, err)
		return assistant.Response{Type: assistant.ResponseError, Content: err.Error(), Intent: q.Intent}, nil
	}

	resp := assistant.Response{
		Type:     assistant.ResponseResults,
		Data:     results,
		Category: categoryFor(key),
		Intent:   q.Intent,
	}
	if len(results) == 0 {
		resp.Content = MsgNoItems
		return resp, nil
	}

	if q.Summarize {
		return assistant.Response{
			Type:    assistant.ResponseChat,
			Content: uc.summarize(ctx, text, key, results),
			Intent:  q.Intent,
		}, nil
	}
	if q.Intent == model.IntentMail {
		uc.annotate(ctx, results)
	}
	resp.Content = fmt.Sprintf(MsgFoundItems, len(results))
	return resp, nil
}

func categoryFor(key connector.Key) string {
	if key == connector.KeyMailGmail || key == connector.KeyMailOutlook {
		return assistant.CategoryMail
	}
	return assistant.CategoryFiles
}
