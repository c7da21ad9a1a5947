package core

import (
	"net/url"

	"github.com/railwayapp/driverpack/core/config"
	"github.com/railwayapp/driverpack/core/logger"
	"github.com/railwayapp/driverpack/core/version"
)

// ValidateConfig logs every problem with cfg and reports whether it is usable
func ValidateConfig(cfg *config.Config, logger *logger.Logger) bool {
	valid := validateURL("catalogUrl", cfg.CatalogURL, logger)
	valid = validateURL("latestUrl", cfg.LatestURL, logger) && valid

	if cfg.MaxVersion != "" && version.Normalize(cfg.MaxVersion) == "" {
		logger.LogError("maxVersion %q is not a driver version", cfg.MaxVersion)
		valid = false
	}

	if cfg.TimeoutSeconds < 0 {
		logger.LogError("timeoutSeconds must not be negative")
		valid = false
	}

	return valid
}

// validateURL checks that the value is an absolute http(s) URL
func validateURL(name, value string, logger *logger.Logger) bool {
	if value == "" {
		logger.LogError("%s is required", name)
		return false
	}

	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		logger.LogError("%s %q is not an http(s) URL", name, value)
		return false
	}

	return true
}
