package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jasper/internal/assistant"
	"jasper/internal/connector"
	"jasper/internal/middleware"
	"jasper/internal/model"
	"jasper/pkg/log"
)

type fakeUseCase struct {
	resp    assistant.Response
	err     error
	open    assistant.OpenOutput
	openErr error
	status  model.IndexStatus
	gotText string
	gotOpen assistant.OpenInput
}

func (f *fakeUseCase) Query(_ context.Context, in assistant.QueryInput) (assistant.Response, error) {
	f.gotText = in.Text
	return f.resp, f.err
}

func (f *fakeUseCase) Open(_ context.Context, in assistant.OpenInput) (assistant.OpenOutput, error) {
	f.gotOpen = in
	return f.open, f.openErr
}

func (f *fakeUseCase) IndexStatus(context.Context) model.IndexStatus {
	return f.status
}

func newRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		uc       *fakeUseCase
		wantCode int
		wantJSON string
	}{
		{
			name:     "empty results keep an empty list",
			body:     `{"query":"emails from ana"}`,
			uc:       &fakeUseCase{resp: assistant.Response{Type: assistant.ResponseResults, Content: "No items found.", Category: "mail", Intent: model.IntentMail}},
			wantCode: http.StatusOK,
			wantJSON: `{"type":"results","content":"No items found.","data":[],"category":"mail","intent":"mail"}`,
		},
		{
			name:     "chat omits data",
			body:     `{"query":"hello"}`,
			uc:       &fakeUseCase{resp: assistant.Response{Type: assistant.ResponseChat, Content: "Hi!"}},
			wantCode: http.StatusOK,
			wantJSON: `{"type":"chat","content":"Hi!"}`,
		},
		{
			name:     "backend error is a normal response",
			body:     `{"query":"emails from ana"}`,
			uc:       &fakeUseCase{resp: assistant.Response{Type: assistant.ResponseError, Content: "quota exceeded"}},
			wantCode: http.StatusOK,
			wantJSON: `{"type":"error","content":"quota exceeded"}`,
		},
		{
			name:     "empty query",
			body:     `{"query":""}`,
			uc:       &fakeUseCase{err: assistant.ErrEmptyQuery},
			wantCode: http.StatusBadRequest,
			wantJSON: `{"type":"error","content":"please enter a query"}`,
		},
		{
			name:     "malformed body",
			body:     `{"query":`,
			uc:       &fakeUseCase{},
			wantCode: http.StatusBadRequest,
			wantJSON: `{"type":"error","content":"invalid request body"}`,
		},
		{
			name:     "unexpected failure is not echoed",
			body:     `{"query":"emails from ana"}`,
			uc:       &fakeUseCase{err: errors.New("dial tcp: refused")},
			wantCode: http.StatusInternalServerError,
			wantJSON: `{"type":"error","content":"internal error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(tt.uc), http.MethodPost, "/api/v1/query", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantJSON != "" {
				assert.JSONEq(t, tt.wantJSON, w.Body.String())
			}
		})
	}
}

func TestQuery_ResultsPayload(t *testing.T) {
	uc := &fakeUseCase{resp: assistant.Response{
		Type:    assistant.ResponseResults,
		Content: "Found 1 items.",
		Data: []model.SearchResult{{
			Kind:    model.ResultKindMail,
			ID:      "m1",
			Fields:  map[string]any{model.FieldSender: "ana"},
			Summary: "Budget attached.",
		}},
	}}
	w := do(newRouter(uc), http.MethodPost, "/api/v1/query", `{"query":"emails from ana"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emails from ana", uc.gotText)

	var body struct {
		Data []model.SearchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Budget attached.", body.Data[0].Summary)
	assert.Equal(t, "ana", body.Data[0].Field(model.FieldSender))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		uc       *fakeUseCase
		wantCode int
		wantJSON string
	}{
		{
			name:     "opened",
			uc:       &fakeUseCase{open: assistant.OpenOutput{Status: assistant.OpenStatusOK, Message: "Opened successfully"}},
			wantCode: http.StatusOK,
			wantJSON: `{"status":"ok","message":"Opened successfully"}`,
		},
		{
			name:     "not found",
			uc:       &fakeUseCase{openErr: connector.ErrItemNotFound},
			wantCode: http.StatusNotFound,
			wantJSON: `{"status":"error","message":"item not found"}`,
		},
		{
			name:     "backend failure",
			uc:       &fakeUseCase{openErr: assertErr("graph unavailable")},
			wantCode: http.StatusInternalServerError,
			wantJSON: `{"status":"error","message":"graph unavailable"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(tt.uc), http.MethodPost, "/api/v1/open", `{"id":"AAMk1","provider":"OUTLOOK"}`)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantJSON, w.Body.String())
			assert.Equal(t, assistant.OpenInput{ID: "AAMk1", Provider: "OUTLOOK"}, tt.uc.gotOpen)
		})
	}
}

func TestIndexStatus(t *testing.T) {
	uc := &fakeUseCase{status: model.IndexStatus{Percent: 42, Status: model.IndexStatusIndexing}}
	w := do(newRouter(uc), http.MethodGet, "/api/v1/index-status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"percent":42,"status":"Indexing"}`, w.Body.String())
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
