package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	flagTicks     int
	flagFireEvery int
	flagLeft      bool
	flagRight     bool
	flagFrom      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session and print the final state",
	Long: `Run the simulation without a terminal UI and print the final state as
YAML together with its hash. The same flags always produce the same output.

Fire is pressed on every K-th frame and released in between, so each
press fires at most one shot.

A previous report can be passed with --from to continue that run; the
script then picks up at the report's tick.

Examples:
  invaders simulate
  invaders simulate --ticks 500 --fire-every 5
  invaders simulate --right --fire-every 3 --log-level debug
  invaders simulate --ticks 40 > run.yaml && invaders simulate --from run.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 250, "Maximum number of frames to run")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 0, "Press fire every K frames (0 = never)")
	simulateCmd.Flags().BoolVar(&flagLeft, "left", false, "Hold left for the whole run")
	simulateCmd.Flags().BoolVar(&flagRight, "right", false, "Hold right for the whole run")
	simulateCmd.Flags().StringVar(&flagFrom, "from", "", "Continue from a previous simulate report")
}

// simulation describes a scripted headless run.
type simulation struct {
	Ticks     int
	FireEvery int
	Left      bool
	Right     bool

	// From is the state to continue from; nil starts a new session.
	From *invaders.Snapshot
}

// simulationReport is the printed result of a run.
type simulationReport struct {
	AliveEnemies int    `yaml:"alive_enemies"`
	Hash         uint64 `yaml:"hash"`

	invaders.Snapshot `yaml:",inline"`
}

// frame returns the scripted input for frame i.
func (s simulation) frame(i int) core.InputFrame {
	in := core.NewInputFrame()
	if s.Left {
		in.Set(core.ActionLeft)
	}
	if s.Right {
		in.Set(core.ActionRight)
	}
	if s.FireEvery > 0 && i%s.FireEvery == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

// run plays the script for Ticks frames, on a new game or on top of From.
// It stops early if the game ends.
func (s simulation) run(cfg config.InvadersConfig) (*invaders.Game, error) {
	if s.Ticks < 0 {
		return nil, fmt.Errorf("--ticks must not be negative, got %d", s.Ticks)
	}
	if s.FireEvery < 0 {
		return nil, fmt.Errorf("--fire-every must not be negative, got %d", s.FireEvery)
	}

	game, err := invaders.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	if s.From != nil {
		if err := game.ApplySnapshot(*s.From); err != nil {
			return nil, err
		}
	}

	start := int(game.State().Tick) //#nosec G115 -- tick counts stay far below MaxInt
	for i := start; i < start+s.Ticks && !game.GameOver(); i++ {
		game.Step(s.frame(i))
	}
	return game, nil
}

// loadReport reads a report written by a previous run.
func loadReport(path string) (simulationReport, error) {
	var report simulationReport
	data, err := os.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf("failed to read report: %w", err)
	}
	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return report, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	sink, closeSink, err := openLogSink(os.Stderr)
	if err != nil {
		return err
	}
	defer closeSink() //nolint:errcheck // Best-effort close of the log file

	logger, err := newLogger(sink)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	sim := simulation{
		Ticks:     flagTicks,
		FireEvery: flagFireEvery,
		Left:      flagLeft,
		Right:     flagRight,
	}
	if flagFrom != "" {
		prev, err := loadReport(flagFrom)
		if err != nil {
			return err
		}
		sim.From = &prev.Snapshot
		logger.Info("continuing run", "from", flagFrom, "tick", prev.Tick)
	}
	logger.Debug("simulation started", "ticks", sim.Ticks, "fire_every", sim.FireEvery, "left", sim.Left, "right", sim.Right)

	game, err := sim.run(cfg)
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	report := simulationReport{
		AliveEnemies: game.AliveEnemies(),
		Hash:         snap.Hash(),
		Snapshot:     snap,
	}
	logger.Info("simulation finished",
		"ticks", snap.Tick,
		"alive", report.AliveEnemies,
		"game_over", snap.GameOver,
	)

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
