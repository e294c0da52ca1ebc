package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Client wraps the Gmail API service.
type Client struct {
	service *gmailapi.Service
	user    string
}

// NewClientFromCredentialsFile creates a Gmail client from a credentials JSON
// file (service account or installed app) and an OAuth token file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Gmail client from raw credentials JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Service accounts need domain-wide delegation to read a mailbox.
	config, err := google.JWTConfigFromJSON(credentialsJSON, gmailapi.GmailReadonlyScope)
	if err == nil {
		svc, svcErr := gmailapi.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create gmail service: %w", svcErr)
		}
		return &Client{service: svc, user: DefaultUser}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, gmailapi.GmailReadonlyScope)
	if cfgErr != nil {
		var probe map[string]json.RawMessage
		if json.Unmarshal(credentialsJSON, &probe) != nil {
			return nil, fmt.Errorf("unsupported credentials format: %w", err)
		}
		return nil, fmt.Errorf("unsupported credentials format: %w", cfgErr)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: %w", tokenPath, tokenErr)
	}
	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := gmailapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create gmail service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc, user: DefaultUser}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc, user: DefaultUser}, nil
}

// WithUser targets another mailbox (service accounts with delegation).
func (c *Client) WithUser(user string) *Client {
	if user != "" {
		c.user = user
	}
	return c
}
