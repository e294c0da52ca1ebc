package files

import (
	"os"

	"github.com/pkg/browser"

	"jasper/internal/connector"
	"jasper/pkg/log"
)

// Connector searches the local file system by name and content.
type Connector struct {
	l   log.Logger
	cfg Config
}

var (
	_ connector.Connector     = (*Connector)(nil)
	_ connector.ContentReader = (*Connector)(nil)
)

// New creates a files connector.
func New(l log.Logger, cfg Config) *Connector {
	if len(cfg.Roots) == 0 {
		cfg.Roots = defaultRoots()
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ReadLimit <= 0 {
		cfg.ReadLimit = DefaultReadLimit
	}
	if cfg.Opener == nil {
		cfg.Opener = browser.OpenFile
	}
	return &Connector{l: l, cfg: cfg}
}

func defaultRoots() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, home)
	}
	if wd, err := os.Getwd(); err == nil {
		roots = append(roots, wd)
	}
	return roots
}

func (c *Connector) Name() string {
	return Name
}
