package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/railwayapp/driverpack/core"
)

func formatReport(report *core.Report, format string) (string, error) {
	switch format {
	case "pretty":
		return core.FormatReport(report, core.PrintOptions{Version: Version}), nil
	case "json":
		serialized, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(serialized), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
