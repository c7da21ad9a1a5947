package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/driverpack/core"
	"github.com/railwayapp/driverpack/core/catalog"
	"github.com/railwayapp/driverpack/core/config"
	"github.com/railwayapp/driverpack/core/logger"
	"github.com/railwayapp/driverpack/core/resolver"
	"github.com/urfave/cli/v3"
)

// Version is set at build time
var Version = "dev"

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a config file (.json, .toml or .yaml)",
		},
		&cli.StringSliceFlag{
			Name:  "env",
			Usage: "environment variables to set. format: KEY=VALUE",
		},
		&cli.StringFlag{
			Name:  "os",
			Usage: "target operating system. one of: linux, mac, windows. defaults to the current platform",
		},
		&cli.StringFlag{
			Name:  "arch",
			Usage: "target architecture, e.g. x64, x86, arm64. defaults to the current platform",
		},
		&cli.StringFlag{
			Name:  "catalog-url",
			Usage: "base URL of the driver catalog",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format. one of: pretty, json",
			Value: "pretty",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output file name",
		},
	}
}

// ConfigForCommand merges the defaults, the config file, DRIVERPACK_ variables
// and flags, in that order
func ConfigForCommand(cmd *cli.Command) (*config.Config, error) {
	var fileConfig *config.Config
	if path := cmd.String("config"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		fileConfig = c
	}

	env, err := config.FromEnvs(cmd.StringSlice("env"))
	if err != nil {
		return nil, fmt.Errorf("error creating env: %w", err)
	}

	osConfig, err := config.FromEnvironment(config.FromOS())
	if err != nil {
		return nil, err
	}

	envConfig, err := config.FromEnvironment(env)
	if err != nil {
		return nil, err
	}

	flagConfig := &config.Config{
		CatalogURL: cmd.String("catalog-url"),
	}

	cfg := config.Merge(config.Default(), fileConfig, osConfig, envConfig, flagConfig)

	logger := logger.NewLogger()
	if !core.ValidateConfig(cfg, logger) {
		for _, msg := range logger.Logs {
			log.Error(msg.Msg)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	return cfg, nil
}

// PlatformForCommand returns the current platform with any --os or --arch override applied
func PlatformForCommand(cmd *cli.Command) catalog.Platform {
	goos, goarch := cmd.String("os"), cmd.String("arch")
	if goos == "" && goarch == "" {
		return catalog.CurrentPlatform()
	}

	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}

	return catalog.NewPlatform(goos, goarch)
}

func ResolverForCommand(cmd *cli.Command) (*resolver.Resolver, *config.Config, error) {
	cfg, err := ConfigForCommand(cmd)
	if err != nil {
		return nil, nil, err
	}

	platform := PlatformForCommand(cmd)

	log.Debugf("Resolving drivers for %s from %s", platform, cfg.CatalogURL)

	return core.NewResolver(cfg, platform), cfg, nil
}

func writeOutput(cmd *cli.Command, output string) error {
	out := cmd.String("out")
	if out == "" {
		os.Stdout.Write([]byte(output))
		os.Stdout.Write([]byte("\n"))
		return nil
	}

	if err := writeFile(out, output); err != nil {
		return err
	}

	log.Infof("Output written to %s", out)
	return nil
}
