package gmail

import (
	"context"

	"jasper/internal/connector"
	"jasper/pkg/gmail"
	"jasper/pkg/log"
)

// Searcher is the subset of the Gmail client the connector needs.
type Searcher interface {
	Search(ctx context.Context, req gmail.SearchRequest) ([]gmail.Message, error)
}

// Connector searches a Gmail mailbox.
type Connector struct {
	l      log.Logger
	client Searcher
}

var _ connector.Connector = (*Connector)(nil)

// New creates a Gmail connector.
func New(l log.Logger, client Searcher) *Connector {
	return &Connector{l: l, client: client}
}

func (c *Connector) Name() string {
	return Name
}
