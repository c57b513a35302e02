package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// fakeGame records the frames it receives and ends after overAt steps.
type fakeGame struct {
	overAt int
	tick   uint64
	over   bool
	resets int
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string                { return "fake" }
func (g *fakeGame) Title() string             { return "Fake" }
func (g *fakeGame) Render(dst *core.Screen)   { dst.Clear(); dst.DrawText(0, 0, "fake", core.ColorWhite) }
func (g *fakeGame) State() core.GameState     { return core.GameState{Tick: g.tick, GameOver: g.over} }
func (g *fakeGame) Reset(_ core.RuntimeConfig) { g.restart() }

func (g *fakeGame) restart() {
	g.tick = 0
	g.over = false
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if g.over {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}
	g.tick++
	if g.overAt > 0 && int(g.tick) >= g.overAt {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func newTestModel(g Game) Model {
	return NewModel(g, core.DefaultConfig(), Options{ReleaseTicks: 3})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelTickAdvancesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{Gen: 0})

	if g.tick != 1 {
		t.Errorf("game tick = %d, expected 1", g.tick)
	}
	if cmd == nil {
		t.Error("an active game should schedule the next tick")
	}
	if m.frame != 1 {
		t.Errorf("frame = %d, expected 1", m.frame)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.gen = 2

	_, cmd := update(t, m, TickMsg{Gen: 1})

	if g.tick != 0 {
		t.Error("a tick from an old chain should not step the game")
	}
	if cmd != nil {
		t.Error("a stale tick should not schedule another")
	}
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	g := &fakeGame{overAt: 2}
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("first tick should reschedule")
	}
	m, cmd = update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("the scheduler should stop once the game is over")
	}

	// A late tick does not step a finished game
	_, cmd = update(t, m, TickMsg{})
	if cmd != nil || len(g.inputs) != 2 {
		t.Errorf("finished game stepped %d times, expected 2", len(g.inputs))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("setup should reach game over")
	}

	m, cmd := update(t, m, runeKey('r'))

	if cmd == nil {
		t.Fatal("restart should start a new tick chain")
	}
	if m.gameState.GameOver {
		t.Error("restart should leave game over")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, expected 1", m.gen)
	}
	if g.resets != 1 {
		t.Errorf("game restarted %d times, expected 1", g.resets)
	}

	// The old chain's tick is dropped, the new one runs
	_, cmd = update(t, m, TickMsg{Gen: 0})
	if cmd != nil {
		t.Error("tick from the stopped chain should be ignored")
	}
}

func TestModelRestartIgnoredWhileActive(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, runeKey('r'))

	if cmd != nil {
		t.Error("restart during play should do nothing")
	}
	if m.gen != 0 || g.resets != 0 {
		t.Error("restart during play should not reset the game")
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	held := 0
	for _, in := range g.inputs {
		if in.Has(core.ActionLeft) {
			held++
		}
	}
	// ReleaseTicks 3: held on the two frames after the press
	if held != 2 {
		t.Errorf("left held for %d frames, expected 2", held)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewShowsLegend(t *testing.T) {
	m := newTestModel(&fakeGame{})

	view := m.View()
	lines := strings.Split(view, "\n")

	if len(lines) != 24 {
		t.Errorf("view has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(lines[0], "fake") {
		t.Error("first line should hold the game frame")
	}
	if !strings.Contains(lines[len(lines)-1], "shoot") {
		t.Errorf("last line should be the key legend, got %q", lines[len(lines)-1])
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(&fakeGame{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(invaders.New(), core.DefaultConfig(), Options{ScreenshotDir: dir})

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "invaders_") {
		t.Errorf("screenshot name %q should start with the game id", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.ContainsRune(string(data), invaders.ShipGlyph) {
		t.Error("screenshot should contain the rendered field")
	}
}

func TestModelPlaysInvaders(t *testing.T) {
	g := invaders.New()
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg{})

	if x := g.Player().X; x != 225 {
		t.Errorf("player x = %v, expected 225 after one right frame", x)
	}
	if m.gameState.Tick != 1 {
		t.Errorf("tick = %d, expected 1", m.gameState.Tick)
	}
}
