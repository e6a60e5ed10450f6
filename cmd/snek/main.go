// Command snek plays snake in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	"github.com/brensch/snek-term/game"
	"github.com/brensch/snek-term/logging"
	"github.com/brensch/snek-term/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	out := os.Stdout
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// The board is sized once; later resizes do not change it.
	cols, rows, err := term.GetSize(out.Fd())
	if err != nil && (cfg.width == 0 || cfg.height == 0) {
		return fmt.Errorf("read terminal size: %w", err)
	}
	width, height := boardSize(cfg, cols, rows)

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(width, height, game.WithApples(cfg.apples), game.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	logger.Info("board ready", "width", width, "height", height, "apples", cfg.apples, "seed", seed, "tick", cfg.tick)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := tui.Run(ctx, g, cfg.tick, logger)
	switch {
	case errors.Is(err, tea.ErrProgramKilled):
		logger.Info("interrupted", "err", err)
	case err != nil:
		logger.Error("game stopped", "err", err)
		return err
	}
	logger.Info("finished", "score", res.Score, "ticks", res.Ticks, "quit", res.Quit)
	fmt.Fprintln(out, tui.FinalScore(res.Score))
	return nil
}

func openLogger(cfg config) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.logLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.logPath == "" {
		return logging.New(io.Discard, level), func() {}, nil
	}
	f, err := os.OpenFile(cfg.logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, level), func() { _ = f.Close() }, nil
}
