package outlook

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/browser"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"

	"jasper/internal/connector"
	"jasper/pkg/log"
)

// Connector searches an Exchange Online mailbox through Microsoft Graph.
type Connector struct {
	l       log.Logger
	http    *http.Client
	baseURL string
	mailbox string
	open    func(url string) error
}

var _ connector.Connector = (*Connector)(nil)

// New creates an Outlook connector. Without an explicit HTTPClient it
// authenticates with the OAuth2 client-credentials flow.
func New(ctx context.Context, l log.Logger, cfg Config) (*Connector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     microsoft.AzureADEndpoint(cfg.TenantID).TokenURL,
			Scopes:       []string{graphScope},
		}
		httpClient = cc.Client(ctx)
		httpClient.Timeout = DefaultTimeout
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opener := cfg.Opener
	if opener == nil {
		opener = browser.OpenURL
	}
	return &Connector{
		l:       l,
		http:    httpClient,
		baseURL: baseURL,
		mailbox: cfg.Mailbox,
		open:    opener,
	}, nil
}

func (c *Connector) Name() string {
	return Name
}
