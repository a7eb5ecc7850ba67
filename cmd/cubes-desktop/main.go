//go:build ebiten

// cubes-desktop plays The Cubes in a window with the real sprite images.
//
// Build with: go build -tags ebiten ./cmd/cubes-desktop
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/games/cubes"
	"github.com/vovakirdan/thecubes/internal/platform/desktop"
	"github.com/vovakirdan/thecubes/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWrap       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubes-desktop",
	Short: "The Cubes in a desktop window",
	Long: `Play The Cubes in a window sized to the configured viewport.

Controls:
  Arrows/WASD  - Steer
  Space        - Stop
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.cubes/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Cubes wrap around instead of vanishing")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubes-desktop",
		Level:           level,
	})

	game := cubes.New()
	if flagWrap {
		game = cubes.NewWrap()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
		Preset:     flagDifficulty,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	g := desktop.New(game, store, rt, logger)
	if err := game.Err(); err != nil {
		return err
	}
	return desktop.Run(g, game.Title())
}
