// invaders is a terminal take on the classic fixed-shooter: move the ship,
// shoot the descending formation, and lose when it reaches you.
//
// Usage:
//
//	invaders play              - Play in the terminal
//	invaders simulate          - Run a headless session and print the final state
//	invaders config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (YAML, or TOML by .toml extension)
//	--fps <rate>         - Override the frame rate from the config
//	--log-file <path>    - Write logs to a file (play logs nowhere by default)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend against a descending formation in your terminal",
	Long: `Invaders is a terminal arcade game. Move the ship along the bottom of
the field and shoot the enemy formation before it reaches you.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless deterministic session
  config    - Print the effective configuration

Examples:
  invaders play
  invaders play --fps 30 --log-file invaders.log
  invaders simulate --ticks 500 --fire-every 5 --right
  invaders config --defaults --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
