package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvs(t *testing.T) {
	env, err := FromEnvs([]string{
		"VAR1=value1",
		"DRIVERPACK_MAX_VERSION=2.46",
	})

	require.NoError(t, err)
	require.Equal(t, "value1", env.GetVariable("VAR1"))
	require.Equal(t, "2.46", env.GetVariable("DRIVERPACK_MAX_VERSION"))
}

func TestFromEnvsLooksUpBareNames(t *testing.T) {
	t.Setenv("DRIVERPACK_INSTALL_DIR", "/opt/drivers")

	env, err := FromEnvs([]string{"DRIVERPACK_INSTALL_DIR", "UNSET_DRIVERPACK_VAR"})
	require.NoError(t, err)
	require.Equal(t, "/opt/drivers", env.GetVariable("DRIVERPACK_INSTALL_DIR"))
	require.NotContains(t, env.Variables, "UNSET_DRIVERPACK_VAR")
}

func TestFromEnvironment(t *testing.T) {
	env := NewEnvironment(&map[string]string{
		"DRIVERPACK_CATALOG_URL":     " https://mirror.example.com/ ",
		"DRIVERPACK_TIMEOUT_SECONDS": "12",
	})

	config, err := FromEnvironment(env)
	require.NoError(t, err)
	require.Equal(t, "https://mirror.example.com/", config.CatalogURL)
	require.Equal(t, 12, config.TimeoutSeconds)

	env.SetVariable("DRIVERPACK_TIMEOUT_SECONDS", "soon")
	_, err = FromEnvironment(env)
	require.ErrorContains(t, err, "DRIVERPACK_TIMEOUT_SECONDS")
}

func TestFromOS(t *testing.T) {
	t.Setenv("DRIVERPACK_LATEST_PATH", "channels.Stable.version")

	env := FromOS()
	value, name := env.GetConfigVariable("LATEST_PATH")
	require.Equal(t, "channels.Stable.version", value)
	require.Equal(t, "DRIVERPACK_LATEST_PATH", name)
}
