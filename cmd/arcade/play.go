package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-arcade/internal/platform/tui"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right - Move (kitty)
  W/Up/Space      - Jump
  X/F or click    - Throw coal (train)
  any other key   - Boost (train)
  P/Esc           - Pause
  R               - Restart after win, game over or a completed run
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Gamepads on /dev/input/js* are picked up automatically.

Examples:
  arcade play kitty
  arcade play train --fps 30
  arcade play kitty --config ./my-kitty.yaml --log kitty.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	applyConfigPath(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
