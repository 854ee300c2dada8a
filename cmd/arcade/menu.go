package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-arcade/internal/platform/tui"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Quitting a game returns to the menu.

Examples:
  arcade menu
  arcade menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		cfg = res.Config

		applyConfigPath(res.GameID)
		game, err := registry.Create(res.GameID)
		if err != nil {
			return fmt.Errorf("create game: %w", err)
		}
		logger.Info("starting game from menu", "game", res.GameID)
		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("run game: %w", err)
		}
	}
}
