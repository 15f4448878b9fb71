// Command hexlace generates a hex path-puzzle level and prints it.
//
// Usage:
//
//	hexlace                                  # defaults, time-derived seed
//	hexlace -seed 0x2a -radius 4 -symmetry rotate3
//	hexlace -config level.yaml -format yaml  # parameters from a file
//	hexlace -title -seed 7                   # title-screen level
//	hexlace -blank -radius 2                 # empty board for the editor
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/params"
	"github.com/katalvlaran/hexlace/pathset"
	"github.com/katalvlaran/hexlace/seedstream"
)

func main() {
	fs := flag.NewFlagSet("hexlace", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML parameter file")
	seed := fs.String("seed", "", "seed: decimal, 0x hex, 0b binary or negative (default: time-derived)")
	series := fs.Uint64("series", 0, "series number for related levels")
	radius := fs.Int("radius", params.DefaultRadius, "board radius")
	symmetry := fs.String("symmetry", "none", "none, mirror, rotate2, rotate3, rotate6 or dihedral6")
	colors := fs.String("colors", "", "comma-separated path colors, e.g. red,blue")
	density := fs.Float64("density", params.DefaultPathDensity, "path density in [0,1]")
	fill := fs.Bool("fill", false, "require every tile to carry a path")
	blank := fs.Bool("blank", false, "emit an empty board")
	title := fs.Bool("title", false, "emit a title-screen level")
	format := fs.String("format", "json", "output format: json or yaml")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	_ = fs.Parse(os.Args[1:])

	var lvl slog.Level
	switch *logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := cliFlags{
		configPath: *configPath, seed: *seed, series: *series, radius: *radius,
		symmetry: *symmetry, colors: *colors, density: *density, fill: *fill,
		blank: *blank, title: *title, format: *format, set: set,
	}
	if err := run(ctx, logger, os.Stdout, cli); err != nil {
		logger.Error("hexlace: fatal", "error", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	configPath string
	seed       string
	series     uint64
	radius     int
	symmetry   string
	colors     string
	density    float64
	fill       bool
	blank      bool
	title      bool
	format     string
	set        map[string]bool // flags given explicitly on the command line
}

func run(ctx context.Context, logger *slog.Logger, out io.Writer, cli cliFlags) error {
	if cli.format != "json" && cli.format != "yaml" {
		return fmt.Errorf("unknown format %q", cli.format)
	}
	p, err := resolveParams(logger, cli)
	if err != nil {
		return err
	}

	var lv *level.Level
	switch {
	case cli.title:
		lv = generator.GenerateRandomTitleLevel(ctx, p.Seed, generator.WithLogger(logger))
	case cli.blank:
		lv = generator.GenerateBlankLevel(p.Radius)
	default:
		lv, err = generator.GenerateRandomLevel(ctx, p, generator.PurposePlay, generator.WithLogger(logger))
		if err != nil {
			var ge *generator.GenerationError
			if errors.As(err, &ge) {
				logger.Warn("generation failed", "kind", ge.Kind, "attempts", ge.Attempts)
			}
			return err
		}
	}
	fixed, hidden, empty := lv.Counts()
	logger.Info("level ready", "id", lv.ID, "seed", seedstream.FormatSeed(lv.Seed),
		"fixed", fixed, "hidden", hidden, "blank", empty)
	return encode(out, cli.format, lv)
}

// resolveParams layers explicit flags over the config file (or defaults).
func resolveParams(logger *slog.Logger, cli cliFlags) (params.GenerationParameters, error) {
	p := params.Defaults()
	if cli.configPath != "" {
		lp, err := params.LoadFile(cli.configPath)
		if err != nil {
			return p, err
		}
		p = *lp
	}

	switch {
	case cli.set["seed"]:
		s, err := seedstream.ParseSeed(cli.seed)
		if err != nil {
			s = seedstream.TimeSeed(time.Now())
			logger.Warn("malformed seed, using time-derived seed",
				"input", cli.seed, "seed", seedstream.FormatSeed(s))
		}
		p.Seed = s
	case cli.configPath == "":
		p.Seed = seedstream.TimeSeed(time.Now())
	}
	if cli.set["series"] {
		p.Series = cli.series
	}
	if cli.set["radius"] {
		p.Radius = cli.radius
	}
	if cli.set["symmetry"] {
		s, err := hexgrid.ParseSymmetry(cli.symmetry)
		if err != nil {
			return p, err
		}
		p.Symmetry = s
	}
	if cli.set["colors"] {
		cs, err := pathset.ParseColorSet(cli.colors)
		if err != nil {
			return p, err
		}
		p.Colors = cs
	}
	if cli.set["density"] {
		p.PathDensity = cli.density
	}
	if cli.set["fill"] {
		p.FillAllTiles = cli.fill
	}
	if cli.blank {
		p.Mode = params.ModeBlank
	}
	return p, nil
}

func encode(out io.Writer, format string, lv *level.Level) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(lv); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(lv)
}
