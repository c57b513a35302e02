package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier, used for screenshot names and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset records the runtime configuration and starts a new session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options tune the platform around the game.
type Options struct {
	// ReleaseTicks is how many frames a movement key stays held after its
	// last press or repeat.
	ReleaseTicks int

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir overrides where ctrl+s writes screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	shotDir   string
	frame     uint64 // frames handled by this model, never reset
	gen       int    // current tick chain
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.ShortSeparator = " · "
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		config:    cfg,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      h,
		held:      NewHeldKeys(opts.ReleaseTicks),
		shotDir:   opts.ScreenshotDir,
		gameState: game.State(),
	}
}

// fieldHeight leaves the last terminal row for the key legend.
func fieldHeight(screenH int) int {
	return max(screenH-1, 0)
}

// Init starts the first tick chain.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"title", m.game.Title(),
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
		"fps", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.logger.Info("quit", "tick", m.gameState.Tick)
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		return m.restart()

	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.held.Press(action, m.frame)
		m.logger.Debug("key", "action", action, "frame", m.frame)
	}

	return m, nil
}

// restart leaves the game-over state and starts a new tick chain.
// Ticks still in flight from the old chain are ignored.
func (m Model) restart() (tea.Model, tea.Cmd) {
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	m.gameState = m.game.Step(in).State
	m.held.Reset()
	m.gen++

	m.logger.Info("restart", "game", m.game.ID())
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleResize processes window resize events. The simulation keeps its
// own field size; only the view is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation frame and schedules the next one.
// The chain stops once the game is over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.gameState.GameOver {
		return m, nil
	}

	m.frame++
	in := m.held.Frame(m.frame)
	m.gameState = m.game.Step(in).State

	m.logger.Debug("frame",
		"tick", m.gameState.Tick,
		"left", in.Has(core.ActionLeft),
		"right", in.Has(core.ActionRight),
		"fire", in.Has(core.ActionFire),
	)

	if m.gameState.GameOver {
		m.logger.Info("game over", "tick", m.gameState.Tick)
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: failed to locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".invaders", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: failed to create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
