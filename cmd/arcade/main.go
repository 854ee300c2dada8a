// arcade plays the Happy Kitty platformer and the Happy Train runner in
// the terminal, or replays scripted input headlessly.
//
// Usage:
//
//	arcade list                       - List available games
//	arcade play <game>                - Play a game
//	arcade menu                       - Pick games interactively
//	arcade sim --script run.yaml      - Replay a script without a terminal
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom game config YAML
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/games/kitty"
	"github.com/vovakirdan/happy-arcade/internal/games/train"
)

var (
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLog      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Happy Arcade - kitty platformer and train runner in your terminal",
	Long: `Happy Arcade runs two small arcade games in the terminal:

  kitty  - Happy Kitty, collect fish, stomp dogs and reach the goal
  train  - Happy Train, keep the train rolling and feed it coal

Examples:
  arcade list
  arcade play kitty
  arcade play train --seed 42
  arcade menu
  arcade sim --script run.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Without --log, output goes to
// fallback; the terminal UI passes io.Discard since stderr shares its
// screen. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closer, nil
}

// runtimeConfig sizes the game to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyConfigPath points the selected game at --config. The YAML schema
// differs per game, so only the game being started receives it.
func applyConfigPath(gameID string) {
	kitty.SetConfigPath("")
	train.SetConfigPath("")
	switch gameID {
	case "kitty":
		kitty.SetConfigPath(flagConfig)
	case "train":
		train.SetConfigPath(flagConfig)
	}
}
