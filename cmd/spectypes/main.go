package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bluesky-social/spectypes/util/cliutil"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("program exited", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	var verbosity int
	app := cli.App{
		Name:                   "spectypes",
		Usage:                  "generate Rust and Elm types from a shared schema spec",
		Version:                versioninfo.Short(),
		UseShortOptionHandling: true,
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "silence all log messages",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase log output (repeatable)",
			Count:   &verbosity,
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format: text or json",
			EnvVars: []string{"SPECTYPES_LOG_FMT"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		_, err := cliutil.SetupSlog(os.Stderr, cliutil.LogOptions{
			Quiet:     cctx.Bool("quiet"),
			Verbosity: verbosity,
			LogFormat: cctx.String("log-format"),
		})
		return err
	}
	app.Commands = []*cli.Command{
		cmdRust(),
		cmdElm(),
		cmdAll(),
		cmdDemo(),
	}
	return app.Run(args)
}
