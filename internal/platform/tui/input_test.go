package tui

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func TestHeldKeysHoldWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionLeft, 10)

	tests := []struct {
		frame uint64
		held  bool
	}{
		{11, true},
		{12, true},
		{13, false},
	}
	for _, tc := range tests {
		if got := h.Held(core.ActionLeft, tc.frame); got != tc.held {
			t.Errorf("frame %d: held = %v, expected %v", tc.frame, got, tc.held)
		}
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionRight, 0)
	h.Press(core.ActionRight, 2)

	if !h.Frame(4).Has(core.ActionRight) {
		t.Error("a repeat should keep the key held")
	}
	if h.Frame(5).Has(core.ActionRight) {
		t.Error("key should release after the window without repeats")
	}
}

func TestHeldKeysOppositeDirection(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionRight, 1)

	in := h.Frame(2)
	if in.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !in.Has(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHeldKeysFireOutlastsRepeatDelay(t *testing.T) {
	h := NewHeldKeys(13)
	h.Press(core.ActionFire, 0)

	// Auto-repeat typically starts about 500ms (12 frames at 25 FPS) in
	for f := uint64(1); f <= 12; f++ {
		if !h.Frame(f).Has(core.ActionFire) {
			t.Fatalf("fire released at frame %d, before the first repeat", f)
		}
	}
	if h.Frame(13).Has(core.ActionFire) {
		t.Error("fire should release once the window passes without a repeat")
	}
}

// fireAt drives a game for frames 1..frames, feeding a fire key event at
// each frame listed in presses, and returns the bullets in flight at the end.
func fireAt(t *testing.T, presses []uint64, frames uint64) int {
	t.Helper()

	cfg := config.DefaultInvadersConfig()
	// One enemy far from the line of fire, so no bullet is lost to a hit
	cfg.Enemies.Rows = 1
	cfg.Enemies.Cols = 1
	cfg.Enemies.XOffset = 0
	g, err := invaders.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}

	h := NewHeldKeys(cfg.Frame.ReleaseTicks)
	next := 0
	for f := uint64(1); f <= frames; f++ {
		// Key events that arrived since the previous frame
		for next < len(presses) && presses[next] < f {
			h.Press(core.ActionFire, presses[next])
			next++
		}
		g.Step(h.Frame(f))
	}
	return len(g.Bullets())
}

func TestHoldingFireShootsOnce(t *testing.T) {
	// Initial press, then auto-repeat from frame 12 through 30
	presses := []uint64{0}
	for f := uint64(12); f <= 30; f++ {
		presses = append(presses, f)
	}

	if shots := fireAt(t, presses, 40); shots != 1 {
		t.Errorf("holding space fired %d shots, expected 1", shots)
	}
}

func TestSeparateFireTapsShootAgain(t *testing.T) {
	// Two taps further apart than the release window
	if shots := fireAt(t, []uint64{0, 20}, 40); shots != 2 {
		t.Errorf("two separate taps fired %d shots, expected 2", shots)
	}
}

func TestHeldKeysIgnoresOtherActions(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionRestart, 0)
	h.Press(core.ActionQuit, 0)

	in := h.Frame(1)
	if in.Has(core.ActionRestart) || in.Has(core.ActionQuit) {
		t.Error("only movement and fire can be held")
	}
}

func TestHeldKeysReset(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionFire, 0)

	h.Reset()

	in := h.Frame(1)
	if in.Has(core.ActionLeft) || in.Has(core.ActionFire) {
		t.Error("Reset should release every key")
	}
}
