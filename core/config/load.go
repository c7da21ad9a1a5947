package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v2"
)

// Load reads a config file. The format is picked from the file extension;
// .json files may contain comments and trailing commas.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	return Parse(filepath.Ext(path), data)
}

// Parse decodes config data in the format named by ext (".json", ".toml", ".yaml" or ".yml")
func Parse(ext string, data []byte) (*Config, error) {
	config := EmptyConfig()
	data = []byte(strings.ReplaceAll(string(data), "\r\n", "\n"))

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		jsonBytes, err := standardizeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("error reading config as JSON: %w", err)
		}
		if err := json.Unmarshal(jsonBytes, config); err != nil {
			return nil, fmt.Errorf("error reading config as JSON: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error reading config as TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error reading config as YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return config, nil
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
