package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/platform/tui"
	"github.com/vovakirdan/thecubes/internal/registry"
	"github.com/vovakirdan/thecubes/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Modes:
  cubes       - Cubes vanish once they leave the screen
  cubes_wrap  - Cubes wrap around to the opposite edge

Controls:
  Arrows/WASD  - Steer
  Space        - Stop
  P            - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  B/Esc        - Leave
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, slower spawns
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, more cubes at once
  fixed  - No progression

Examples:
  cubes play cubes
  cubes play cubes_wrap --difficulty hard
  cubes play cubes --config ./my-cubes.yaml --seed 42
  cubes play cubes --only diamond
  cubes play cubes_wrap --only left`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'cubes list' to see available modes", gameID)
	}
	if err := validatePreset(); err != nil {
		return err
	}
	if err := preflight(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "preset", flagDifficulty, "seed", flagSeed)
	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime settings from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Preset:     flagDifficulty,
		Only:       flagOnly,
	}
}
