package gmail_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jasper/pkg/gmail"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gmail.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gmail.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Errorf("expected missing token failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)
		_, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app bad token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)
		_, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gmail.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "missing.json"), tokenPath)
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestSearch(t *testing.T) {
	body := base64.URLEncoding.EncodeToString([]byte("Hello, the budget is attached."))
	var gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gmail/v1/users/me/messages":
			gotQuery = r.URL.Query().Get("q")
			if gotQuery == "fail" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"messages":[{"id":"m1","threadId":"t1"}],"resultSizeEstimate":1}`))
		case "/gmail/v1/users/me/messages/m1":
			fmt.Fprintf(w, `{
				"id": "m1",
				"threadId": "t1",
				"snippet": "Hello, the budget",
				"internalDate": "1765370000000",
				"payload": {
					"mimeType": "multipart/mixed",
					"headers": [
						{"name": "From", "value": "Ana <ana@example.com>"},
						{"name": "Subject", "value": "Budget 2026"}
					],
					"parts": [
						{"mimeType": "text/plain", "body": {"data": %q}},
						{"mimeType": "application/pdf", "filename": "budget.pdf", "body": {"attachmentId": "a1"}}
					]
				}
			}`, body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	msgs, err := client.Search(context.Background(), gmail.SearchRequest{Query: "from:ana", MaxResults: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "from:ana" {
		t.Errorf("unexpected query: %q", gotQuery)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.From != "Ana <ana@example.com>" || m.Subject != "Budget 2026" {
		t.Errorf("unexpected headers: %+v", m)
	}
	if m.Body != "Hello, the budget is attached." {
		t.Errorf("unexpected body: %q", m.Body)
	}
	if !m.HasAttachment {
		t.Errorf("expected attachment flag")
	}
	if m.Date.UnixMilli() != 1765370000000 {
		t.Errorf("unexpected date: %v", m.Date)
	}

	if _, err := client.Search(context.Background(), gmail.SearchRequest{Query: "fail"}); err == nil {
		t.Fatalf("expected api error")
	}
}
