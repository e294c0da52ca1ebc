package router

import (
	"encoding/json"
	"regexp"
	"strings"

	"jasper/internal/model"
)

var fenceRe = regexp.MustCompile("(?s)```(?:\\w+)?\\s*(.*?)```")

// Sanitize parses raw classifier output into a RawClassification.
//
// A leading fenced block is unwrapped (the first block wins) and escaped
// underscores are normalized. Empty input, invalid JSON and non-object JSON
// are reported as errors.
func Sanitize(raw string) (model.RawClassification, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = unfence(text)
	}
	text = strings.ReplaceAll(text, `\_`, "_")
	text = strings.TrimSpace(text)
	if text == "" {
		return model.RawClassification{}, ErrEmptyResponse
	}

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return model.RawClassification{}, ErrInvalidJSON
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return model.RawClassification{}, ErrNotObject
	}

	cls := model.RawClassification{Params: model.Params{}}
	if intent, ok := obj["intent"].(string); ok {
		cls.Intent = strings.TrimSpace(intent)
	}
	if params, ok := obj["params"].(map[string]any); ok {
		cls.Params = model.Params(params)
	}
	return cls, nil
}

func unfence(text string) string {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	// Unterminated fence: drop the opener and its language tag.
	text = strings.TrimPrefix(text, "```")
	if i := strings.IndexAny(text, "{[\""); i >= 0 {
		return text[i:]
	}
	return text
}
