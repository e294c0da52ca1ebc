package deepseek_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jasper/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		w.Write([]byte(`{"model":"deepseek-chat","choices":[{"message":{"role":"assistant","content":"hi"}}]}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Choices[0].Message.Content != "hi" {
		t.Errorf("content = %q", resp.Choices[0].Message.Content)
	}

	bad, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
	_, err = bad.GenerateContent(context.Background(), &deepseek.Request{})
	if err == nil || !strings.Contains(err.Error(), "bad key") {
		t.Errorf("err = %v, want API error message", err)
	}
}
