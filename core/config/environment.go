package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

type Environment struct {
	Variables map[string]string
}

func NewEnvironment(variables *map[string]string) *Environment {
	if variables == nil {
		variables = &map[string]string{}
	}

	return &Environment{Variables: *variables}
}

// FromEnvs collects variables from NAME=VALUE pairs. A bare NAME is looked up
// in the current process environment.
func FromEnvs(envs []string) (*Environment, error) {
	env := NewEnvironment(nil)
	re := regexp.MustCompile(`([A-Za-z0-9_-]*)(?:=?)(.*)`)

	for _, e := range envs {
		matches := re.FindStringSubmatch(e)
		if len(matches) < 3 || matches[1] == "" {
			continue
		}

		name := matches[1]
		value := matches[2]

		if value == "" {
			if v, ok := os.LookupEnv(name); ok {
				env.SetVariable(name, v)
			}
		} else {
			env.SetVariable(name, value)
		}
	}

	return env, nil
}

// FromOS collects every DRIVERPACK_ prefixed variable of the current process
func FromOS() *Environment {
	env := NewEnvironment(nil)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, "DRIVERPACK_") {
			env.SetVariable(name, value)
		}
	}
	return env
}

func (e *Environment) GetVariable(name string) string {
	return e.Variables[name]
}

func (e *Environment) SetVariable(name, value string) {
	e.Variables[name] = value
}

// ConfigVariable returns the DRIVERPACK_ prefixed version of a variable name
func (e *Environment) ConfigVariable(name string) string {
	return fmt.Sprintf("DRIVERPACK_%s", name)
}

// GetConfigVariable returns the trimmed value of a DRIVERPACK_ prefixed variable
// along with the full variable name
func (e *Environment) GetConfigVariable(name string) (string, string) {
	configVar := e.ConfigVariable(name)

	if val, exists := e.Variables[configVar]; exists {
		return strings.TrimSpace(val), configVar
	}
	return "", ""
}

// FromEnvironment builds a config from DRIVERPACK_ variables
func FromEnvironment(env *Environment) (*Config, error) {
	config := EmptyConfig()
	if env == nil {
		return config, nil
	}

	config.CatalogURL, _ = env.GetConfigVariable("CATALOG_URL")
	config.LatestURL, _ = env.GetConfigVariable("LATEST_URL")
	config.LatestPath, _ = env.GetConfigVariable("LATEST_PATH")
	config.MaxVersion, _ = env.GetConfigVariable("MAX_VERSION")
	config.InstallDir, _ = env.GetConfigVariable("INSTALL_DIR")

	if timeout, name := env.GetConfigVariable("TIMEOUT_SECONDS"); timeout != "" {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number of seconds: %w", name, err)
		}
		config.TimeoutSeconds = seconds
	}

	return config, nil
}
