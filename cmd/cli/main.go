package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/driverpack/cli"
	urfave "github.com/urfave/cli/v3"
)

var verbose bool

func main() {

	logger := log.Default()
	logger.SetTimeFormat("")
	urfaveLogWriter := logger.StandardLog(log.StandardLogOptions{
		ForceLevel: log.ErrorLevel,
	}).Writer()
	urfave.ErrWriter = urfaveLogWriter

	cmd := &urfave.Command{
		Name:                  "driverpack",
		Usage:                 "Resolve and install chromedriver binaries for the current platform",
		EnableShellCompletion: true,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enable verbose logging",
				Value:       false,
				Destination: &verbose,
			},
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			configureLogging(verbose)

			return ctx, nil
		},
		Commands: []*urfave.Command{
			cli.ResolveCommand,
			cli.VersionsCommand,
			cli.InstallCommand,
			cli.SchemaCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func configureLogging(verbose bool) {
	log.SetTimeFormat("")

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
