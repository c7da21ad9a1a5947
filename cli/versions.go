package cli

import (
	"context"

	"github.com/railwayapp/driverpack/core"
	"github.com/urfave/cli/v3"
)

var VersionsCommand = &cli.Command{
	Name:                  "versions",
	Aliases:               []string{"ls"},
	Usage:                 "list the chromedriver versions available for a platform",
	EnableShellCompletion: true,
	Flags:                 append(commonFlags(), outputFlags()...),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		r, _, err := ResolverForCommand(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		report, err := core.ListVersions(ctx, r)
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

		return nil
	},
}
