package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"jasper/pkg/llmprovider"
	"jasper/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubLLM struct {
	text  string
	err   error
	block bool
	got   *llmprovider.Request
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.got = req
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: s.text}}},
	}, nil
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantIntent string
		wantParams map[string]any
		wantErr    error
	}{
		{
			name:       "plain object",
			raw:        `{"intent":"MAIL","params":{"sender":"ana"}}`,
			wantIntent: "MAIL",
			wantParams: map[string]any{"sender": "ana"},
		},
		{
			name:       "json fence",
			raw:        "```json\n{\"intent\":\"FILES\",\"params\":{\"query\":\"cv\"}}\n```",
			wantIntent: "FILES",
			wantParams: map[string]any{"query": "cv"},
		},
		{
			name:       "first fence wins",
			raw:        "```\n{\"intent\":\"CHAT\"}\n```\n```\n{\"intent\":\"MAIL\"}\n```",
			wantIntent: "CHAT",
			wantParams: map[string]any{},
		},
		{
			name:       "unterminated fence",
			raw:        "```json {\"intent\":\"SEMANTIC\",\"params\":{}}",
			wantIntent: "SEMANTIC",
			wantParams: map[string]any{},
		},
		{
			name:       "escaped underscore",
			raw:        `{"intent":"MAIL","params":{"date\_filter":"today"}}`,
			wantIntent: "MAIL",
			wantParams: map[string]any{"date_filter": "today"},
		},
		{
			name:       "null intent",
			raw:        `{"intent":null,"params":{}}`,
			wantIntent: "",
			wantParams: map[string]any{},
		},
		{name: "empty", raw: "   ", wantErr: ErrEmptyResponse},
		{name: "empty fence", raw: "```json\n```", wantErr: ErrEmptyResponse},
		{name: "prose", raw: "I think this is mail", wantErr: ErrInvalidJSON},
		{name: "array", raw: `["MAIL"]`, wantErr: ErrNotObject},
		{name: "string", raw: `"MAIL"`, wantErr: ErrNotObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.Equal(t, tt.wantParams, map[string]any(got.Params))
		})
	}
}

func TestClassify(t *testing.T) {
	llm := &stubLLM{text: `{"intent":"MAIL","params":{"sender":"ana"}}`}
	r := New(llm, log.NewNop(), time.Second)

	cls := r.Classify(context.Background(), "emails from ana")
	assert.False(t, cls.Fallback)
	assert.Equal(t, "MAIL", cls.Raw.Intent)
	assert.Equal(t, "ana", cls.Raw.Params.String("sender"))

	require.NotNil(t, llm.got)
	assert.Equal(t, llmprovider.FormatJSON, llm.got.ResponseFormat)
	assert.Equal(t, float64(ClassifierTemperature), llm.got.Temperature)
	require.NotNil(t, llm.got.SystemInstruction)
}

func TestClassify_Fallback(t *testing.T) {
	tests := []struct {
		name string
		llm  *stubLLM
	}{
		{name: "provider error", llm: &stubLLM{err: errors.New("503")}},
		{name: "garbage", llm: &stubLLM{text: "sure! here you go"}},
		{name: "timeout", llm: &stubLLM{block: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.llm, log.NewNop(), 20*time.Millisecond)
			cls := r.Classify(context.Background(), "hello")
			assert.True(t, cls.Fallback)
			assert.Error(t, cls.Reason)
		})
	}
}

func TestClassify_IgnoresCallerCancellation(t *testing.T) {
	llm := &stubLLM{text: `{"intent":"CHAT"}`}
	r := New(llm, log.NewNop(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cls := r.Classify(ctx, "hi")
	assert.False(t, cls.Fallback)
	assert.Equal(t, "CHAT", cls.Raw.Intent)
}

func TestNew_DefaultTimeout(t *testing.T) {
	r := New(&stubLLM{}, log.NewNop(), 0)
	assert.Equal(t, DefaultTimeout, r.timeout)
}
