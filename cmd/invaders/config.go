package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	flagDefaults bool
	flagFormat   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after loading the
config file chain and applying flag overrides.

Use --defaults to print the built-in defaults instead; the output is a
complete config file to start from.

Examples:
  invaders config
  invaders config --defaults > ~/.invaders/configs/invaders.yaml
  invaders config --defaults --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown --format %q (want yaml or toml)", flagFormat)
	}

	// The embedded file keeps its comments
	if flagDefaults && format == config.FormatYAML {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	sink, closeSink, err := openLogSink(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeSink() //nolint:errcheck // Best-effort close of the log file

	logger, err := newLogger(sink)
	if err != nil {
		return err
	}

	cfg := config.DefaultInvadersConfig()
	if flagDefaults {
		logger.Debug("printing defaults", "format", format)
	} else {
		loaded, source, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Info("config loaded", "source", source, "format", format)
	}

	out, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
