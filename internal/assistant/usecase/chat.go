package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"jasper/internal/assistant"
	"jasper/pkg/llmprovider"
)

var directiveRe = regexp.MustCompile(`(?s)\{.*"action"\s*:\s*"google_search".*\}`)

type searchDirective struct {
	Action string `json:"action"`
	Query  string `json:"query"`
}

func (uc *implUseCase) chatResponse(ctx context.Context, text string) assistant.Response {
	return assistant.Response{Type: assistant.ResponseChat, Content: uc.chat(ctx, text)}
}

// chat answers conversationally. A search directive from the model is
// forwarded to the web-search model.
func (uc *implUseCase) chat(ctx context.Context, text string) string {
	reply, err := uc.complete(ctx, llmprovider.NewPrompt(PromptChatSystem, text))
	if err != nil {
		uc.l.Warnf(ctx, "%s.chat: %v", LogPrefix, err)
		return fmt.Sprintf(MsgChatFailed, err)
	}
	if query, ok := parseSearchDirective(reply); ok {
		uc.l.Infof(ctx, "%s.chat: web search requested: %q", LogPrefix, query)
		return uc.searchWeb(ctx, query)
	}
	return reply
}

func (uc *implUseCase) searchWeb(ctx context.Context, query string) string {
	if uc.webSearch == nil {
		return MsgWebSearchOff
	}
	ctx, cancel := context.WithTimeout(ctx, uc.chatTimeout)
	defer cancel()

	req := llmprovider.NewPrompt("", query)
	req.WebSearch = true
	resp, err := uc.webSearch.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s.searchWeb: %v", LogPrefix, err)
		return fmt.Sprintf(MsgWebSearchFailed, err)
	}
	return resp.Text()
}

// complete runs a single chat-model call under the chat timeout.
func (uc *implUseCase) complete(ctx context.Context, req *llmprovider.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.chatTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// parseSearchDirective recognizes {"action":"google_search","query":...},
// bare or embedded in prose.
func parseSearchDirective(reply string) (string, bool) {
	candidate := reply
	if m := directiveRe.FindString(reply); m != "" {
		candidate = m
	}
	var d searchDirective
	if err := json.Unmarshal([]byte(candidate), &d); err != nil {
		return "", false
	}
	if d.Action != searchDirectiveName || d.Query == "" {
		return "", false
	}
	return d.Query, true
}
