package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jasper/pkg/ollama"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"model":"jasper","message":{"role":"assistant","content":"{\"intent\":\"mail\"}"},"done":true,"prompt_eval_count":7,"eval_count":4}`))
	}))
	defer ts.Close()

	client, err := ollama.New(ollama.Config{BaseURL: ts.URL, Model: "jasper"})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &ollama.Request{
		System:   "classify",
		Messages: []ollama.Message{{Role: "user", Content: "mail from ana"}},
		Stop:     []string{"\n", "User:"},
		JSON:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"intent":"mail"}`, resp.Message.Content)
	assert.Equal(t, 7, resp.PromptEvalCount)
	assert.Equal(t, "json", got["format"])
	assert.Equal(t, false, got["stream"])

	msgs := got["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])

	opts := got["options"].(map[string]any)
	assert.Equal(t, []any{"\n", "User:"}, opts["stop"])
}

func TestGenerateContent_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer ts.Close()

	client, _ := ollama.New(ollama.Config{BaseURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &ollama.Request{})
	assert.Error(t, err)
	assert.Equal(t, ollama.DefaultModel, client.Model())
}
