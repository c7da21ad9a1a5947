package cli

import (
	"context"
	"os"

	"github.com/railwayapp/driverpack/core"
	"github.com/railwayapp/driverpack/core/resolver"
	"github.com/urfave/cli/v3"
)

var ResolveCommand = &cli.Command{
	Name:                  "resolve",
	Aliases:               []string{"r"},
	Usage:                 "resolve the download URL of a chromedriver version",
	ArgsUsage:             "VERSION",
	EnableShellCompletion: true,
	Flags:                 append(commonFlags(), outputFlags()...),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		requested := cmd.Args().First()
		if requested == "" {
			requested = resolver.Latest
		}

		r, _, err := ResolverForCommand(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		report, err := core.ResolveDriver(ctx, r, requested)
		if err != nil {
			return cli.Exit(err, 1)
		}

		output, err := formatReport(report, cmd.String("format"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := writeOutput(cmd, output); err != nil {
			return cli.Exit(err, 1)
		}

		if !report.Success {
			os.Exit(1)
		}

		return nil
	},
}
