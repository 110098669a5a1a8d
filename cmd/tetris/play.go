package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Keys are configurable; the defaults are:

Controls:
  Left/H, Right/L  - Move
  Up/K             - Rotate
  Down/J           - Hard drop
  A                - Advance one step
  Space            - Start (when not running)
  P                - Pause
  Tab              - Session scores (when not running)
  Q/Ctrl+C         - Quit

Logs go to --log-file only, so they never draw over the game.

Examples:
  tetris play
  tetris play --seed 42 --fps 30
  tetris play --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source := loadConfig()

	logger, closer, err := newLogger("tetris", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()
	logger.Info("config loaded", "source", source)

	game, err := tetris.NewGame(cfg)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height - 1, // Help bar
			TickRate: frameRate(cfg),
			Seed:     resolveSeed(),
		},
		Keys:    tui.NewKeyMap(cfg.Keys),
		History: storage.NewHistory(),
		Logger:  logger,
	}

	if err := tui.Run(game, opts); err != nil {
		logger.Error("game stopped", "error", err)
		closer.Close()
		fail("running game: %v", err)
	}
}
