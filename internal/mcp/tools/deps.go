package tools

import (
	"errors"
	"sync"

	"github.com/usebeehiiv/beehiiv-mcp/internal/config"
	"github.com/usebeehiiv/beehiiv-mcp/pkg/beehiiv"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config *config.Config

	clientOnce func() (*beehiiv.Client, error)
}

// NewDeps builds the handler dependencies from cfg. The API client is
// constructed lazily on first use so the server can start, list tools, and
// report a useful error per call when no credential is configured.
func NewDeps(cfg *config.Config) *Deps {
	d := &Deps{Config: cfg}
	d.clientOnce = sync.OnceValues(func() (*beehiiv.Client, error) {
		if cfg.APIKey == "" {
			return nil, errors.New("BEEHIIV_API_KEY environment variable is required")
		}
		return beehiiv.New(cfg.APIKey,
			beehiiv.WithBaseURL(cfg.BaseURL),
			beehiiv.WithTimeout(cfg.HTTPTimeout),
		), nil
	})
	return d
}

// APIClient returns the shared Beehiiv client, constructing it on first call.
func (d *Deps) APIClient() (*beehiiv.Client, error) {
	return d.clientOnce()
}
