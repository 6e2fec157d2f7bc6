// Package main はjsconsoleのエントリーポイント。
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kakkky/jsconsole/errs"
	"github.com/kakkky/jsconsole/version"
)

func main() {
	app := &cli.Command{
		Name:    "jsconsole",
		Usage:   "Interactive JavaScript evaluation console",
		Version: version.VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a config file (yml, toml or json)",
				Sources: cli.EnvVars("JSCONSOLE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("JSCONSOLE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "autostart",
				Usage: "Path to the autostart file evaluated on startup",
			},
			&cli.BoolFlag{
				Name:  "no-autostart",
				Usage: "Skip the autostart file",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return run(runParams{
				ConfigPath:    cmd.String("config"),
				LogLevel:      cmd.String("log-level"),
				AutostartFile: cmd.String("autostart"),
				NoAutostart:   cmd.Bool("no-autostart"),
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Show the version",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Check whether a newer release is available",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return printVersion(os.Stdout, cmd.Bool("check"))
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		errs.HandleError(err)
		os.Exit(1)
	}
}
