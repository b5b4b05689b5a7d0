package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/platformer/colors"
	"github.com/plus3/platformer/game"
	"github.com/plus3/platformer/input"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	maxTPS = 1000
)

func main() {
	colorsPath := flag.String("colors", "", "Color table file (JSON or YAML). Empty uses the fixed color.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random color picks.")
	headless := flag.Bool("headless", false, "Run without a window and print a report.")
	duration := flag.Duration("duration", 5*time.Second, "How long a headless run lasts.")
	tps := flag.Int("tps", 60, "Frames per second of a headless run.")
	pressEvery := flag.Int("press-every", 30, "Headless runs tap the trigger every N frames, N >= 2 (0 disables).")
	debugUI := flag.Bool("debug-ui", false, "Show the Dear ImGui debug overlay.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	trigger := flag.String("trigger", input.KeySpace.String(), "Key that changes the clear color.")
	observed := flag.String("observed", input.KeyA.String(), "Key whose state is logged.")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	if cfg.Trigger, err = input.ParseBinding(*trigger); err != nil {
		fatal(logger, "bad -trigger", err)
	}
	if cfg.Observed, err = input.ParseBinding(*observed); err != nil {
		fatal(logger, "bad -observed", err)
	}

	var table *colors.Table
	if *colorsPath != "" {
		table, err = colors.LoadTableFile(*colorsPath)
		if err != nil {
			fatal(logger, "failed to load color table", err)
		}
		logger.Info("loaded color table", "path", *colorsPath, "colors", table.Len())
	}

	world, err := game.NewWorld(cfg, table, logger)
	if err != nil {
		fatal(logger, "failed to build world", err)
	}

	if *headless {
		if *tps <= 0 || *tps > maxTPS {
			fatal(logger, "bad -tps", fmt.Errorf("must be between 1 and %d, got %d", maxTPS, *tps))
		}
		pulse, err := input.NewPulse(cfg.Trigger, *pressEvery)
		if err != nil {
			fatal(logger, "bad -press-every", err)
		}
		runHeadless(world, logger, pulse, *duration, *tps)
		return
	}

	if err := runWindowed(world, *debugUI); err != nil {
		fatal(logger, "game exited", err)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad -log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

func runHeadless(world *game.World, logger *slog.Logger, src input.Source, duration time.Duration, tps int) {
	world.SetSource(src)

	report := &game.Report{
		Duration: duration,
		TPS:      tps,
		Mode:     world.Mode().String(),
	}
	report.Begin()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	logger.Info("running headless", "duration", duration, "tps", tps)
	start := time.Now()
	err := world.Run(ctx, time.Second/time.Duration(tps))
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Debug("headless run finished", "frames", world.Scheduler.Tick())
	case errors.Is(err, context.Canceled):
		logger.Info("headless run interrupted", "frames", world.Scheduler.Tick())
	case err != nil:
		fatal(logger, "headless run failed", err)
	}

	report.End(world, time.Since(start))
	if err := report.Generate(os.Stdout); err != nil {
		fatal(logger, "failed to generate report", err)
	}
}
