package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tiaforge/internal/config"
	"tiaforge/internal/engineering"
	"tiaforge/internal/engineering/bridge"
	"tiaforge/internal/engineering/sim"
	"tiaforge/internal/repository/sqlite"
	"tiaforge/internal/service"
)

const dialTimeout = 30 * time.Second

// portalOpener returns the opener for the configured backend
func portalOpener(portal config.PortalConfig, logger zerolog.Logger) (service.PortalOpener, error) {
	switch portal.Backend {
	case config.BackendSim:
		catalog, err := loadCatalog(portal.Catalog)
		if err != nil {
			return nil, err
		}
		return func(context.Context) (engineering.Portal, error) {
			return sim.NewPortal(catalog), nil
		}, nil

	case config.BackendBridge:
		params := bridge.OpenParams{
			Version:       portal.Version,
			AssemblyPath:  portal.AssemblyPath(),
			WithInterface: portal.WithUI,
		}
		url := portal.BridgeURL
		return func(ctx context.Context) (engineering.Portal, error) {
			dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
			defer cancel()
			return bridge.Dial(dialCtx, url, params, logger)
		}, nil
	}
	return nil, fmt.Errorf("unknown backend %q", portal.Backend)
}

func loadCatalog(path string) (*sim.Catalog, error) {
	if path == "" {
		return sim.DefaultCatalog(), nil
	}
	catalog, err := sim.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("load simulator catalog: %w", err)
	}
	return catalog, nil
}

// openJournal opens the configured journal, or returns nil when it is disabled
func openJournal(path string) (*sqlite.Repository, error) {
	if path == "" {
		return nil, nil
	}
	j, err := sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return j, nil
}
