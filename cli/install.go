package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/driverpack/core"
	"github.com/railwayapp/driverpack/core/fetch"
	"github.com/railwayapp/driverpack/core/install"
	"github.com/railwayapp/driverpack/core/resolver"
	"github.com/urfave/cli/v3"
)

var InstallCommand = &cli.Command{
	Name:                  "install",
	Aliases:               []string{"update"},
	Usage:                 "download a chromedriver version into the install directory",
	ArgsUsage:             "VERSION",
	EnableShellCompletion: true,
	Flags: append(commonFlags(),
		&cli.StringFlag{
			Name:  "dir",
			Usage: "directory to install the driver into",
		},
	),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		requested := cmd.Args().First()
		if requested == "" {
			requested = resolver.Latest
		}

		r, cfg, err := ResolverForCommand(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		report, err := core.ResolveDriver(ctx, r, requested)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if !report.Success {
			return cli.Exit(fmt.Sprintf("no chromedriver matching %s for %s", requested, r.Platform()), 1)
		}

		dir := cmd.String("dir")
		if dir == "" {
			dir = cfg.InstallDir
		}

		path, err := install.Install(ctx, install.Options{
			URL:      report.Result.DownloadPath,
			Version:  install.VersionFromURL(report.Result.DownloadPath, cfg.CatalogListURL()),
			Dir:      dir,
			Platform: r.Platform(),
			Client:   fetch.NewClient(cfg.Timeout()),
		})
		if err != nil {
			return cli.Exit(err, 1)
		}

		log.Infof("Installed chromedriver %s to %s", report.Result.RequestedVersion, path)
		return nil
	},
}
