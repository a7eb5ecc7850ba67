package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thecubes/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.cubes/configs/cubes.yaml or ./configs/cubes.yaml to customize the game,
or pass it with --config.

With --check, the configuration that would be used (honoring --config) is
loaded and validated instead, including every sprite image.

Examples:
  cubes config > ~/.cubes/configs/cubes.yaml
  cubes config --check --config ./my-cubes.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the active configuration and sprites")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		fmt.Print(string(config.GetDefaultYAML()))
		return nil
	}
	if err := preflight(); err != nil {
		return err
	}
	fmt.Println("Configuration OK")
	return nil
}
