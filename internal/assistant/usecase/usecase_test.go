package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jasper/internal/assistant"
	"jasper/internal/connector"
	"jasper/internal/indexer"
	"jasper/internal/intent"
	"jasper/internal/model"
	"jasper/internal/resolver"
	"jasper/internal/router"
	"jasper/pkg/datemath"
	"jasper/pkg/llmprovider"
	"jasper/pkg/log"
)

type stubRouter struct {
	cls router.Classification
}

func (s stubRouter) Classify(context.Context, string) router.Classification {
	return s.cls
}

type scriptedLLM struct {
	mu    sync.Mutex
	reply func(req *llmprovider.Request) (string, error)
	calls []*llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	text, err := s.reply(req)
	if err != nil {
		return nil, err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
	}, nil
}

func (s *scriptedLLM) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return ""
	}
	return s.calls[len(s.calls)-1].Messages[0].Parts[0].Text
}

func replyWith(text string) *scriptedLLM {
	return &scriptedLLM{reply: func(*llmprovider.Request) (string, error) { return text, nil }}
}

type fakeConnector struct {
	name     string
	results  []model.SearchResult
	err      error
	got      connector.Params
	openMsg  string
	openErr  error
	contents map[string]string
}

func (f *fakeConnector) Name() string { return f.name }

func (f *fakeConnector) Search(_ context.Context, p connector.Params) ([]model.SearchResult, error) {
	f.got = p
	return f.results, f.err
}

func (f *fakeConnector) Open(_ context.Context, id string) (string, error) {
	return f.openMsg, f.openErr
}

func (f *fakeConnector) ReadContent(_ context.Context, id string) (string, error) {
	s, ok := f.contents[id]
	if !ok {
		return "", connector.ErrItemNotFound
	}
	return s, nil
}

type fixture struct {
	uc      *implUseCase
	llm     *scriptedLLM
	gmail   *fakeConnector
	outlook *fakeConnector
	files   *fakeConnector
}

func newFixture(t *testing.T, cls router.Classification, llm *scriptedLLM) *fixture {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	res := resolver.New(intent.New(), parser, resolver.Options{
		Now: func() time.Time { return time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC) },
	})

	f := &fixture{
		llm:     llm,
		gmail:   &fakeConnector{name: "Gmail", openErr: connector.ErrOpenUnsupported},
		outlook: &fakeConnector{name: "Outlook", openMsg: "Opened successfully"},
		files:   &fakeConnector{name: "Files", openMsg: "Opened successfully"},
	}
	reg := connector.NewRegistry()
	reg.Register(connector.KeyMailGmail, f.gmail)
	reg.Register(connector.KeyMailOutlook, f.outlook)
	reg.Register(connector.KeyFiles, f.files)

	f.uc, err = New(log.NewNop(), Config{
		Router:     stubRouter{cls: cls},
		Resolver:   res,
		Registry:   reg,
		LLM:        llm,
		StatusFile: filepath.Join(t.TempDir(), "status.json"),
	})
	require.NoError(t, err)
	return f
}

func mailClassification(params model.Params) router.Classification {
	return router.Classification{Raw: model.RawClassification{Intent: "mail", Params: params}}
}

func mailResult(id, body string) model.SearchResult {
	return model.SearchResult{
		Kind:   model.ResultKindMail,
		ID:     id,
		Fields: map[string]any{model.FieldSender: "ana", model.FieldSubject: "Budget", model.FieldBody: body},
	}
}

func TestQuery_EmptyInput(t *testing.T) {
	f := newFixture(t, router.Classification{}, replyWith(""))
	_, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "   "})
	assert.ErrorIs(t, err, assistant.ErrEmptyQuery)
}

func TestQuery_ClassifierFallbackChats(t *testing.T) {
	f := newFixture(t, router.Classification{Fallback: true, Reason: router.ErrInvalidJSON}, replyWith("Hi there!"))

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseChat, resp.Type)
	assert.Equal(t, "Hi there!", resp.Content)
	assert.Equal(t, "hello", f.llm.lastPrompt())
}

func TestQuery_ChatTopicOverridesClassifier(t *testing.T) {
	f := newFixture(t, mailClassification(model.Params{"sender": "weather"}), replyWith("Sunny."))

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "what is the weather today"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseChat, resp.Type)
	assert.Equal(t, "Sunny.", resp.Content)
	assert.Empty(t, f.gmail.got.Sender)
}

func TestQuery_MailResultsAreAnnotated(t *testing.T) {
	f := newFixture(t, mailClassification(model.Params{"sender": "ana"}), replyWith("Ana shares the budget."))
	f.gmail.results = []model.SearchResult{
		mailResult("m1", "Hello, attached is the budget for next year."),
		mailResult("m2", "short"),
	}

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "show emails from ana"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseResults, resp.Type)
	assert.Equal(t, "Found 2 items.", resp.Content)
	assert.Equal(t, assistant.CategoryMail, resp.Category)
	assert.Equal(t, "ana", f.gmail.got.Sender)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Ana shares the budget.", resp.Data[0].Summary)
	assert.Equal(t, MsgNoContent, resp.Data[1].Summary)
}

func TestQuery_NoResults(t *testing.T) {
	f := newFixture(t, mailClassification(model.Params{"sender": "ana"}), replyWith(""))

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "show emails from ana"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseResults, resp.Type)
	assert.Equal(t, MsgNoItems, resp.Content)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestQuery_BackendErrorIsReported(t *testing.T) {
	f := newFixture(t, mailClassification(model.Params{"sender": "ana"}), replyWith(""))
	f.gmail.err = errors.New("gmail search: quota exceeded")

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "show emails from ana"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseError, resp.Type)
	assert.Equal(t, "gmail search: quota exceeded", resp.Content)
}

func TestQuery_SummarizeMail(t *testing.T) {
	f := newFixture(t, mailClassification(model.Params{"sender": "ana", "summarize": true}), replyWith("Ana sent two budget mails."))
	f.gmail.results = []model.SearchResult{mailResult("m1", "Budget draft one"), mailResult("m2", "Budget draft two")}

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "summarize emails from ana"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseChat, resp.Type)
	assert.Equal(t, "Ana sent two budget mails.", resp.Content)

	prompt := f.llm.lastPrompt()
	assert.Contains(t, prompt, "summarize emails from ana")
	assert.Contains(t, prompt, "ITEM 2 (Email)")
	assert.Contains(t, prompt, "do not suggest using google_search")
}

func TestQuery_SummaryFlagNeedsUserWords(t *testing.T) {
	f := newFixture(t, mailClassification(model.Params{"sender": "ana", "summarize": true}), replyWith("One line."))
	f.gmail.results = []model.SearchResult{mailResult("m1", "Budget draft one")}

	resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "show emails from ana"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ResponseResults, resp.Type)
}

func TestSummarizeFiles(t *testing.T) {
	f := newFixture(t, router.Classification{}, replyWith("A quarterly report."))
	f.files.contents = map[string]string{"/docs/report.txt": "Q3 revenue grew."}

	results := []model.SearchResult{
		{Kind: model.ResultKindFile, ID: "/docs", Fields: map[string]any{model.FieldName: "docs", model.FieldPath: "/docs", model.FieldType: "folder"}},
		{Kind: model.ResultKindFile, ID: "/docs/report.txt", Fields: map[string]any{model.FieldName: "report.txt", model.FieldPath: "/docs/report.txt", model.FieldType: "file"}},
		{Kind: model.ResultKindFile, ID: "/docs/scan.pdf", Fields: map[string]any{model.FieldName: "scan.pdf", model.FieldPath: "/docs/scan.pdf", model.FieldType: "file"}},
	}

	out := f.uc.summarize(context.Background(), "summarize report", connector.KeyFiles, results)
	assert.Contains(t, out, "**FILE: report.txt**")
	assert.Contains(t, out, "Summary: A quarterly report.")
	assert.Contains(t, out, "**FILE: scan.pdf**")
	assert.Contains(t, out, MsgFileUnreadable)
	assert.NotContains(t, out, "**FILE: docs**")
	assert.Len(t, f.llm.calls, 1)

	out = f.uc.summarize(context.Background(), "q", connector.KeyFiles, results[:1])
	assert.Equal(t, MsgOnlyFolders, out)
}

func TestSummarizeText(t *testing.T) {
	long := strings.Repeat("word ", 200)
	tests := []struct {
		name  string
		text  string
		reply string
		err   error
		want  string
	}{
		{name: "too short", text: "hi", want: MsgNoContent},
		{name: "model summary", text: "Meeting moved to Friday at noon.", reply: "Meeting is Friday.", want: "Meeting is Friday."},
		{name: "model error", text: "Meeting moved to Friday at noon.", err: errors.New("down"), want: "Meeting moved to Friday at noon...."},
		{name: "rambling answer", text: long, reply: strings.Repeat("x", 151), want: long[:500] + "..."},
		{name: "empty answer", text: "Meeting moved to Friday.", reply: "", want: "Meeting moved to Friday...."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &scriptedLLM{reply: func(*llmprovider.Request) (string, error) { return tt.reply, tt.err }}
			f := newFixture(t, router.Classification{}, llm)
			assert.Equal(t, tt.want, f.uc.summarizeText(context.Background(), tt.text))
		})
	}
}

func TestSummarizeText_Cached(t *testing.T) {
	f := newFixture(t, router.Classification{}, replyWith("Cached line."))
	text := "The office is closed on Monday."

	assert.Equal(t, "Cached line.", f.uc.summarizeText(context.Background(), text))
	assert.Equal(t, "Cached line.", f.uc.summarizeText(context.Background(), text))
	assert.Len(t, f.llm.calls, 1)
	assert.Equal(t, PromptSummarySystem, f.llm.calls[0].SystemInstruction.Parts[0].Text)
}

func TestChat_WebSearchDirective(t *testing.T) {
	directive := `Let me look. {"action": "google_search", "query": "euro rate today"}`

	t.Run("forwarded to web search", func(t *testing.T) {
		f := newFixture(t, router.Classification{Fallback: true}, replyWith(directive))
		web := replyWith("1 EUR = 1.08 USD")
		f.uc.webSearch = web

		resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "euro rate?"})
		require.NoError(t, err)
		assert.Equal(t, "1 EUR = 1.08 USD", resp.Content)
		require.Len(t, web.calls, 1)
		assert.True(t, web.calls[0].WebSearch)
		assert.Equal(t, "euro rate today", web.lastPrompt())
	})

	t.Run("not configured", func(t *testing.T) {
		f := newFixture(t, router.Classification{Fallback: true}, replyWith(directive))
		resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "euro rate?"})
		require.NoError(t, err)
		assert.Equal(t, MsgWebSearchOff, resp.Content)
	})

	t.Run("chat model down", func(t *testing.T) {
		llm := &scriptedLLM{reply: func(*llmprovider.Request) (string, error) { return "", errors.New("boom") }}
		f := newFixture(t, router.Classification{Fallback: true}, llm)
		resp, err := f.uc.Query(context.Background(), assistant.QueryInput{Text: "hi"})
		require.NoError(t, err)
		assert.Equal(t, assistant.ResponseChat, resp.Type)
		assert.Contains(t, resp.Content, "boom")
	})
}

func TestParseSearchDirective(t *testing.T) {
	tests := []struct {
		reply string
		query string
		ok    bool
	}{
		{reply: `{"action":"google_search","query":"news"}`, query: "news", ok: true},
		{reply: "Sure:\n{\"action\": \"google_search\", \"query\": \"score\"}\n", query: "score", ok: true},
		{reply: `{"action":"google_search"}`, ok: false},
		{reply: `{"action":"other","query":"x"}`, ok: false},
		{reply: "just text", ok: false},
	}
	for _, tt := range tests {
		q, ok := parseSearchDirective(tt.reply)
		assert.Equal(t, tt.ok, ok, tt.reply)
		assert.Equal(t, tt.query, q, tt.reply)
	}
}

func TestOpen(t *testing.T) {
	f := newFixture(t, router.Classification{}, replyWith(""))
	ctx := context.Background()

	out, err := f.uc.Open(ctx, assistant.OpenInput{ID: "AAMk1", Provider: "OUTLOOK"})
	require.NoError(t, err)
	assert.Equal(t, assistant.OpenStatusOK, out.Status)

	out, err = f.uc.Open(ctx, assistant.OpenInput{ID: "m1", Provider: "gmail"})
	require.NoError(t, err)
	assert.Equal(t, assistant.OpenStatusIgnored, out.Status)

	out, err = f.uc.Open(ctx, assistant.OpenInput{ID: "x", Provider: "DROPBOX"})
	require.NoError(t, err)
	assert.Equal(t, assistant.OpenStatusIgnored, out.Status)

	out, err = f.uc.Open(ctx, assistant.OpenInput{Provider: "FILES"})
	require.NoError(t, err)
	assert.Equal(t, assistant.OpenStatusIgnored, out.Status)

	f.files.openErr = connector.ErrItemNotFound
	_, err = f.uc.Open(ctx, assistant.OpenInput{ID: "/missing", Provider: "FILES"})
	assert.ErrorIs(t, err, connector.ErrItemNotFound)
}

func TestIndexStatus(t *testing.T) {
	f := newFixture(t, router.Classification{}, replyWith(""))
	ctx := context.Background()

	st := f.uc.IndexStatus(ctx)
	assert.Equal(t, 100, st.Percent)
	assert.Equal(t, model.IndexStatusIdle, st.Status)

	require.NoError(t, indexer.WriteStatus(f.uc.statusFile, model.IndexStatus{Percent: 40, Status: model.IndexStatusIndexing}))
	st = f.uc.IndexStatus(ctx)
	assert.Equal(t, 40, st.Percent)
	assert.Equal(t, model.IndexStatusIndexing, st.Status)
	assert.NotNil(t, st.UpdatedAt)

	require.NoError(t, os.WriteFile(f.uc.statusFile, []byte("{"), 0o644))
	st = f.uc.IndexStatus(ctx)
	assert.Equal(t, model.IndexStatusError, st.Status)
	assert.NotEmpty(t, st.Error)
}
