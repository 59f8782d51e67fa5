package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bluesky-social/spectypes/elmgen"
	"github.com/bluesky-social/spectypes/rustgen"
	"github.com/bluesky-social/spectypes/spec"
	"github.com/bluesky-social/spectypes/util/cliutil"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// flags hold parse state, so every command gets its own instances
func inputFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "spec file to read (- for stdin)",
			Value:   cliutil.StdioPath,
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "encoding of the input spec: yaml or json (default: from the input file extension)",
		},
		&cli.BoolFlag{
			Name:  "demo",
			Usage: "render the built-in sample spec instead of reading input",
		},
	}
	return append(flags, extra...)
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file to write (- for stdout)",
		Value:   cliutil.StdioPath,
	}
}

func modeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "mode",
		Usage:   "elm rendering mode: auto, bare or full (auto picks bare for modules without a name)",
		Value:   "auto",
		EnvVars: []string{"SPECTYPES_ELM_MODE"},
	}
}

func cmdRust() *cli.Command {
	return &cli.Command{
		Name:   "rust",
		Usage:  "render Rust type declarations with serde attributes",
		Flags:  inputFlags(outputFlag()),
		Action: runRust,
	}
}

func cmdElm() *cli.Command {
	return &cli.Command{
		Name:   "elm",
		Usage:  "render Elm types with JSON decoders and encoders",
		Flags:  inputFlags(outputFlag(), modeFlag()),
		Action: runElm,
	}
}

func cmdAll() *cli.Command {
	return &cli.Command{
		Name:  "all",
		Usage: "render both Rust and Elm output from one spec",
		Flags: inputFlags(
			&cli.StringFlag{
				Name:  "rust-output",
				Usage: "file to write Rust output to (- for stdout)",
				Value: cliutil.StdioPath,
			},
			&cli.StringFlag{
				Name:  "elm-output",
				Usage: "file to write Elm output to (- for stdout)",
				Value: cliutil.StdioPath,
			},
			modeFlag(),
		),
		Action: runAll,
	}
}

func runRust(cctx *cli.Context) error {
	m, err := loadSpec(cctx)
	if err != nil {
		return err
	}
	return writeOutput(cctx.String("output"), rustgen.Render(m))
}

func runElm(cctx *cli.Context) error {
	m, err := loadSpec(cctx)
	if err != nil {
		return err
	}
	mode, err := elmMode(cctx.String("mode"), m)
	if err != nil {
		return err
	}
	return writeOutput(cctx.String("output"), elmgen.Render(m, mode))
}

func runAll(cctx *cli.Context) error {
	m, err := loadSpec(cctx)
	if err != nil {
		return err
	}
	mode, err := elmMode(cctx.String("mode"), m)
	if err != nil {
		return err
	}

	var rustText, elmText string
	eg := new(errgroup.Group)
	eg.Go(func() error {
		rustText = rustgen.Render(m)
		return nil
	})
	eg.Go(func() error {
		elmText = elmgen.Render(m, mode)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	// written one after the other so both may target stdout
	if err := writeOutput(cctx.String("rust-output"), rustText); err != nil {
		return err
	}
	return writeOutput(cctx.String("elm-output"), elmText)
}

func elmMode(flag string, m *spec.Module) (elmgen.Mode, error) {
	if strings.ToLower(flag) == "auto" || flag == "" {
		return elmgen.ModeForModule(m.Name), nil
	}
	mode, err := elmgen.ParseMode(flag)
	if err != nil {
		return mode, err
	}
	if mode == elmgen.ModeFull && m.Name == "" {
		slog.Warn("rendering a full elm module without a module name")
	}
	return mode, nil
}

func loadSpec(cctx *cli.Context) (*spec.Module, error) {
	var m *spec.Module
	if cctx.Bool("demo") {
		slog.Info("using built-in sample spec")
		m = spec.SampleModule()
	} else {
		path := cctx.String("input")
		format := spec.FormatForPath(path)
		if f := cctx.String("format"); f != "" {
			var err error
			format, err = spec.ParseFormat(f)
			if err != nil {
				return nil, err
			}
		}

		in, err := cliutil.OpenInput(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer in.Close()

		slog.Info("reading spec", "path", path, "format", format)
		lines, err := in.ReadLines()
		if err != nil {
			return nil, err
		}
		m, err = spec.Decode([]byte(strings.Join(lines, "\n")), format)
		if err != nil {
			return nil, fmt.Errorf("failed to read spec %q: %w", path, err)
		}
	}

	if err := m.CheckSchema(); err != nil {
		return nil, err
	}
	for _, w := range m.Warnings() {
		slog.Warn("degenerate spec input", "warning", w)
	}
	slog.Debug("loaded spec", "module", m.Name, "types", len(m.Types))
	return m, nil
}

func writeOutput(path, text string) error {
	out, err := cliutil.CreateOutput(path)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	slog.Info("writing output", "path", path, "bytes", len(text)+1)
	if err := out.WriteAll([]byte(text + "\n")); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
