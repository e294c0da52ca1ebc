package outlook

import (
	"errors"
	"net/http"
	"time"
)

// Config configures the Microsoft Graph mail connector.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// Mailbox is the user principal name. Empty uses /me, which only works
	// with delegated tokens supplied through HTTPClient.
	Mailbox string
	BaseURL string
	// HTTPClient overrides the client-credentials client, mainly for tests.
	HTTPClient *http.Client
	Opener     func(url string) error
}

// Validate reports whether the app credentials are complete.
func (c Config) Validate() error {
	if c.HTTPClient != nil {
		return nil
	}
	if c.TenantID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return errors.New("outlook: tenant_id, client_id and client_secret are required")
	}
	if c.Mailbox == "" {
		return errors.New("outlook: mailbox is required for app credentials")
	}
	return nil
}

type messageList struct {
	Value []message `json:"value"`
}

type message struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	BodyPreview      string    `json:"bodyPreview"`
	ReceivedDateTime time.Time `json:"receivedDateTime"`
	HasAttachments   bool      `json:"hasAttachments"`
	WebLink          string    `json:"webLink"`
	From             struct {
		EmailAddress struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"emailAddress"`
	} `json:"from"`
}

func (m message) sender() string {
	addr := m.From.EmailAddress
	switch {
	case addr.Name != "" && addr.Address != "":
		return addr.Name + " <" + addr.Address + ">"
	case addr.Address != "":
		return addr.Address
	}
	return addr.Name
}

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
