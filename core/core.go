package core

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/driverpack/core/catalog"
	"github.com/railwayapp/driverpack/core/config"
	"github.com/railwayapp/driverpack/core/fetch"
	"github.com/railwayapp/driverpack/core/logger"
	"github.com/railwayapp/driverpack/core/resolver"
)

type Report struct {
	Platform catalog.Platform     `json:"platform"`
	Result   resolver.MatchResult `json:"result"`
	Versions []string             `json:"versions,omitempty"`
	Logs     []logger.Msg         `json:"logs"`
	Success  bool                 `json:"success"`
}

// NewResolver wires a resolver to the HTTP catalog and latest version endpoints of cfg
func NewResolver(cfg *config.Config, platform catalog.Platform) *resolver.Resolver {
	client := fetch.NewClient(cfg.Timeout())

	return resolver.NewResolver(
		cfg,
		platform,
		fetch.NewCatalogFetcher(cfg.CatalogListURL(), client),
		fetch.NewLatestVersionFetcher(cfg.LatestURL, cfg.LatestPath, client),
	)
}

// ResolveDriver resolves the requested version and reports the outcome.
// Not finding a driver is reported through the logs, not as an error.
func ResolveDriver(ctx context.Context, r *resolver.Resolver, requested string) (*Report, error) {
	logger := logger.NewLogger()

	result, err := r.Resolve(ctx, requested)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve driver %s: %w", requested, err)
	}

	if result.Found() {
		logger.LogInfo("Resolved chromedriver %s for %s", result.RequestedVersion, r.Platform())
	} else {
		logger.LogWarn("No chromedriver matching %s was found for %s", result.RequestedVersion, r.Platform())
	}

	log.Debugf("Driver download path: %q", result.DownloadPath)

	return &Report{
		Platform: r.Platform(),
		Result:   result,
		Logs:     logger.Logs,
		Success:  result.Found(),
	}, nil
}

// ListVersions reports every driver version available for the resolver's platform
func ListVersions(ctx context.Context, r *resolver.Resolver) (*Report, error) {
	logger := logger.NewLogger()

	versions, err := r.Versions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver versions: %w", err)
	}

	if len(versions) == 0 {
		logger.LogWarn("No chromedriver versions are available for %s", r.Platform())
	}

	return &Report{
		Platform: r.Platform(),
		Versions: versions,
		Logs:     logger.Logs,
		Success:  len(versions) > 0,
	}, nil
}
