package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorgate/internal/core"
	"github.com/vovakirdan/colorgate/internal/games/colorgate"
	"github.com/vovakirdan/colorgate/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Color Gate in the terminal.

Controls:
  Left/A, Right/D  - Move (hold)
  Space/C, click   - Switch color
  Enter            - Start
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower barriers that arrive less often
  normal - The configured pace
  hard   - Faster barriers that arrive more often
  fixed  - No speed-up over time

Examples:
  colorgate play
  colorgate play --difficulty easy
  colorgate play --seed 42 --log-file colorgate.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logging would corrupt the alternate screen, so it is dropped
	// unless a log file is given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := colorgate.NewGame(gameCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting terminal game", "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(game, gameCfg.PaletteColors(), cfg, gameCfg.Intro, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
