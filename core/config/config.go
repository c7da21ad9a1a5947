package config

import (
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

const (
	DefaultCatalogURL     = "https://chromedriver.storage.googleapis.com/"
	DefaultLatestURL      = "https://chromedriver.storage.googleapis.com/LATEST_RELEASE"
	DefaultInstallDir     = "/tmp/driverpack/drivers"
	DefaultTimeoutSeconds = 30
)

type Config struct {
	// Base URL of the driver storage. Matched entry keys are appended to it
	CatalogURL string `json:"catalogUrl,omitempty" toml:"catalogUrl" yaml:"catalogUrl" jsonschema:"description=Base URL of the driver catalog. Matched entry keys are appended to it"`

	// URL returning the latest published driver version
	LatestURL string `json:"latestUrl,omitempty" toml:"latestUrl" yaml:"latestUrl" jsonschema:"description=URL returning the latest published driver version"`

	// Dotted path to the version when the latest URL serves JSON
	LatestPath string `json:"latestPath,omitempty" toml:"latestPath" yaml:"latestPath" jsonschema:"description=Dotted path to the version when the latest URL serves JSON (e.g. channels.Stable.version)"`

	// Highest version listed by the versions command
	MaxVersion string `json:"maxVersion,omitempty" toml:"maxVersion" yaml:"maxVersion" jsonschema:"description=Highest driver version to consider when listing versions"`

	// Directory drivers are installed into
	InstallDir string `json:"installDir,omitempty" toml:"installDir" yaml:"installDir" jsonschema:"description=Directory drivers are installed into"`

	// Timeout for each HTTP request in seconds
	TimeoutSeconds int `json:"timeoutSeconds,omitempty" toml:"timeoutSeconds" yaml:"timeoutSeconds" jsonschema:"description=Timeout for each HTTP request in seconds"`
}

func EmptyConfig() *Config {
	return &Config{}
}

// Default returns the configuration used when nothing else is provided
func Default() *Config {
	return &Config{
		CatalogURL:     DefaultCatalogURL,
		LatestURL:      DefaultLatestURL,
		InstallDir:     DefaultInstallDir,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Merge combines configs where the last non-empty value of each field wins
func Merge(configs ...*Config) *Config {
	result := EmptyConfig()

	for _, c := range configs {
		if c == nil {
			continue
		}

		if c.CatalogURL != "" {
			result.CatalogURL = c.CatalogURL
		}
		if c.LatestURL != "" {
			result.LatestURL = c.LatestURL
		}
		if c.LatestPath != "" {
			result.LatestPath = c.LatestPath
		}
		if c.MaxVersion != "" {
			result.MaxVersion = c.MaxVersion
		}
		if c.InstallDir != "" {
			result.InstallDir = c.InstallDir
		}
		if c.TimeoutSeconds != 0 {
			result.TimeoutSeconds = c.TimeoutSeconds
		}
	}

	return result
}

// DownloadURL joins the catalog base URL and an entry key
func (c *Config) DownloadURL(key string) string {
	return c.CatalogListURL() + key
}

// CatalogListURL is the URL the bucket listing is served from
func (c *Config) CatalogListURL() string {
	if strings.HasSuffix(c.CatalogURL, "/") {
		return c.CatalogURL
	}
	return c.CatalogURL + "/"
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Properties.Set("$schema", &jsonschema.Schema{
		Type:        "string",
		Description: "The schema for this config",
	})
}

func GetJsonSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	schema := r.Reflect(&Config{})
	return schema
}
