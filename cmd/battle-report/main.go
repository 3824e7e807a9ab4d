// cmd/battle-report/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go-crown-quest/internal/config"
	"go-crown-quest/internal/defs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("battle report failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("battle-report", flag.ContinueOnError)
	runs := fs.Int("runs", 100, "number of battles")
	seedBase := fs.Int64("seed-base", 1, "seed of the first battle")
	seedStep := fs.Int64("seed-step", 1, "seed increment between battles")
	left := fs.String("left", "0:50", "player army as class:stack")
	right := fs.String("right", "10:30", "enemy army as class:stack")
	hero := fs.String("hero", "0,0,0", "hero bonuses as att,def,spd")
	workers := fs.Int("workers", runtime.NumCPU(), "battles simulated at once")
	logLevel := fs.String("log-level", "warn", "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := config.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", *runs)
	}
	var m Matchup
	if m.Left, err = parseArmy(*left); err != nil {
		return err
	}
	if m.Right, err = parseArmy(*right); err != nil {
		return err
	}
	if m.Hero, err = parseHero(*hero); err != nil {
		return err
	}

	lib, err := defs.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	logger.Info("running battles", "runs", *runs, "workers", *workers, "seed_base", *seedBase)
	results, err := runAll(ctx, lib, m, seeds(*runs, *seedBase, *seedStep), *workers, logger)
	if err != nil {
		return err
	}
	printReport(out, lib, m, results)
	return nil
}
