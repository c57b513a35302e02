package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the ship
  Space            - Shoot (up to 3 shots in flight)
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.invaders/screenshots
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --config ./my-invaders.yaml
  invaders play --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs only go to a file
	sink, closeSink, err := openLogSink(io.Discard)
	if err != nil {
		return err
	}
	defer closeSink() //nolint:errcheck // Best-effort close of the log file

	logger, err := newLogger(sink)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "fps", cfg.Frame.FPS)

	game, err := invaders.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Frame.FPS,
	}

	err = tui.Run(game, runtime, tui.Options{
		ReleaseTicks: cfg.Frame.ReleaseTicks,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
