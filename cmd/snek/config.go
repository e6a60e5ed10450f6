package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brensch/snek-term/game"
	"github.com/brensch/snek-term/tui"
)

type config struct {
	width    int
	height   int
	tick     time.Duration
	apples   int
	seed     int64
	logPath  string
	logLevel string
}

func parseConfig(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("snek", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", getEnvIntOrDefault("SNEK_WIDTH", 0), "Board interior width (0 = terminal width - 2)")
	fs.IntVar(&cfg.height, "height", getEnvIntOrDefault("SNEK_HEIGHT", 0), "Board interior height (0 = terminal height - 2)")
	fs.DurationVar(&cfg.tick, "tick", getEnvDurationOrDefault("SNEK_TICK", tui.DefaultTick), "Delay between steps")
	fs.IntVar(&cfg.apples, "apples", getEnvIntOrDefault("SNEK_APPLES", game.DefaultAppleCount), "Apples on the board")
	fs.Int64Var(&cfg.seed, "seed", int64(getEnvIntOrDefault("SNEK_SEED", 0)), "Apple placement seed (0 = time based)")
	fs.StringVar(&cfg.logPath, "log", getEnvOrDefault("SNEK_LOG", ""), "Append JSON logs to this file (empty = no logs)")
	fs.StringVar(&cfg.logLevel, "log-level", getEnvOrDefault("SNEK_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.width < 0 || cfg.height < 0 {
		return config{}, fmt.Errorf("board size must not be negative: %dx%d", cfg.width, cfg.height)
	}
	if cfg.tick <= 0 {
		return config{}, fmt.Errorf("tick must be positive: %s", cfg.tick)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var i int
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// boardSize returns the interior size: explicit values win, otherwise the
// terminal size minus one border cell on each side.
func boardSize(cfg config, termCols, termRows int) (int, int) {
	w, h := cfg.width, cfg.height
	if w == 0 {
		w = termCols - 2
	}
	if h == 0 {
		h = termRows - 2
	}
	return w, h
}
