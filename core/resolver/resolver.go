package resolver

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/driverpack/core/catalog"
	"github.com/railwayapp/driverpack/core/config"
	"github.com/railwayapp/driverpack/core/matcher"
	"github.com/railwayapp/driverpack/core/version"
)

// Latest is the requested version that resolves to the newest published driver
const Latest = "latest"

type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]string, error)
}

type LatestVersionFetcher interface {
	FetchLatest(ctx context.Context) (string, error)
}

// MatchResult is the outcome of a resolution. DownloadPath is empty when no
// catalog entry matched. RequestedVersion is always the caller's input.
type MatchResult struct {
	DownloadPath     string `json:"downloadPath"`
	RequestedVersion string `json:"requestedVersion"`
}

// Found reports whether a catalog entry matched
func (m MatchResult) Found() bool {
	return m.DownloadPath != ""
}

// Resolver holds no state between calls and is safe for concurrent use
type Resolver struct {
	config   *config.Config
	platform catalog.Platform
	catalog  CatalogFetcher
	latest   LatestVersionFetcher
}

func NewResolver(cfg *config.Config, platform catalog.Platform, catalogFetcher CatalogFetcher, latestFetcher LatestVersionFetcher) *Resolver {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Resolver{
		config:   cfg,
		platform: platform,
		catalog:  catalogFetcher,
		latest:   latestFetcher,
	}
}

func (r *Resolver) Platform() catalog.Platform {
	return r.platform
}

// Resolve finds the download URL of the driver matching requested, which is
// an exact or partial version or "latest"
func (r *Resolver) Resolve(ctx context.Context, requested string) (MatchResult, error) {
	if requested == Latest {
		latestVersion, err := r.latest.FetchLatest(ctx)
		if err != nil {
			return MatchResult{}, err
		}

		log.Debugf("Latest driver version is %s", latestVersion)
		return r.resolveExact(ctx, latestVersion)
	}

	return r.resolveExact(ctx, requested)
}

func (r *Resolver) resolveExact(ctx context.Context, requested string) (MatchResult, error) {
	entries, err := r.eligibleEntries(ctx)
	if err != nil {
		return MatchResult{}, err
	}

	key, err := matcher.FindBestMatch(entries, requested, r.platform)
	if err != nil {
		return MatchResult{}, err
	}

	result := MatchResult{RequestedVersion: requested}
	if key == "" {
		log.Debugf("No driver matching %s for %s", requested, r.platform)
		return result, nil
	}

	result.DownloadPath = r.config.DownloadURL(key)
	log.Debugf("Resolved driver %s to %s", requested, key)

	return result, nil
}

// Versions lists the distinct normalized versions available for the platform
// in ascending order. Versions above the configured maximum are left out.
func (r *Resolver) Versions(ctx context.Context) ([]string, error) {
	entries, err := r.eligibleEntries(ctx)
	if err != nil {
		return nil, err
	}

	maxVersion := ""
	if r.config.MaxVersion != "" {
		maxVersion = version.Normalize(r.config.MaxVersion)
		if maxVersion == "" {
			return nil, &matcher.InvalidVersionError{Version: r.config.MaxVersion}
		}
	}

	seen := make(map[string]bool)
	versions := []string{}
	for _, key := range entries {
		v := matcher.EntryVersion(key)
		if v == "" || seen[v] {
			continue
		}
		if maxVersion != "" && version.Compare(v, maxVersion) > 0 {
			continue
		}

		seen[v] = true
		versions = append(versions, v)
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return version.Compare(versions[i], versions[j]) < 0
	})

	return versions, nil
}

func (r *Resolver) eligibleEntries(ctx context.Context) ([]string, error) {
	keys, err := r.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	entries := catalog.Filter(keys, r.platform)
	log.Debugf("%d of %d catalog entries are eligible for %s", len(entries), len(keys), r.platform)

	return entries, nil
}
