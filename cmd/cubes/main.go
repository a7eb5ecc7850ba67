// cubes is a terminal arcade game: steer your cube, dodge the cubes that
// drift in from the edges and collect diamonds.
//
// Usage:
//
//	cubes list              - List game modes
//	cubes play <mode>       - Play a mode
//	cubes menu              - Pick modes interactively
//	cubes serve             - Start SSH server for remote play
//	cubes scores <mode>     - Show high scores and recent runs
//	cubes config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.cubes/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//	--only <kind|edge>    - Spawn a single kind, e.g. rock, diamond or left
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/thecubes/internal/asset"
	"github.com/vovakirdan/thecubes/internal/config"
	"github.com/vovakirdan/thecubes/internal/entity"

	// Register the game modes
	_ "github.com/vovakirdan/thecubes/internal/games/cubes"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagOnly       string
)

// logger is set up before any command runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubes",
	Short: "The Cubes - dodge cubes and collect diamonds in your terminal",
	Long: `The Cubes is a terminal arcade game. Steer the player cube around a
wrapping play field, avoid the cubes drifting in from every edge and
pick up diamonds for extra points.

Available commands:
  list     - Show all game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and run statistics
  config   - Print the default configuration

Examples:
  cubes play cubes
  cubes play cubes_wrap --difficulty hard
  cubes menu --log-file cubes.log --log-level debug
  cubes serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cubes/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagOnly, "only", "", "Spawn a single kind (hori_left, rock, diamond, ...) or the kind entering from an edge (left, top, anywhere, ...)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the shared logger. While a game is running Bubble Tea
// owns the terminal, so interactive commands only log when --log-file is set.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer
	switch {
	case flagLogFile != "":
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = logFile
	case cmd.Name() == "serve":
		out = os.Stderr
	default:
		return nil
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubes",
		Level:           level,
	})
	return nil
}

// preflight loads the configuration and decodes every sprite, so that a
// broken setup is reported before the terminal is taken over.
func preflight() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagOnly != "" {
		if _, err := entity.ParseSpawnKind(flagOnly); err != nil {
			return fmt.Errorf("invalid --only: %w", err)
		}
	}
	if _, err := entity.NewViewport(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Gameplay.SpawnBuffer); err != nil {
		return err
	}
	if err := asset.NewLibrary(cfg.Images).Preload(); err != nil {
		return err
	}
	logger.Debug("preflight ok",
		"size", fmt.Sprintf("%dx%d", cfg.Graphics.Width, cfg.Graphics.Height),
		"images", cfg.Images.FolderName,
	)
	return nil
}

// validatePreset rejects unknown --difficulty values.
func validatePreset() error {
	if flagDifficulty == "" || config.ParsePreset(flagDifficulty) != "" {
		return nil
	}
	return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
}
