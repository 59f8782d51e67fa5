package main

import (
	"strings"

	"github.com/bluesky-social/spectypes/spec"

	"github.com/urfave/cli/v2"
)

func cmdDemo() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "write the built-in sample spec, for use as input to the other commands",
		Flags: []cli.Flag{
			outputFlag(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "encoding of the written spec: yaml or json",
				Value: string(spec.FormatYAML),
			},
		},
		Action: runDemo,
	}
}

func runDemo(cctx *cli.Context) error {
	format, err := spec.ParseFormat(cctx.String("format"))
	if err != nil {
		return err
	}
	b, err := spec.Encode(spec.SampleModule(), format)
	if err != nil {
		return err
	}
	return writeOutput(cctx.String("output"), strings.TrimRight(string(b), "\n"))
}
