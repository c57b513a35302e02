package tui

import "github.com/vovakirdan/tui-invaders/internal/core"

// HeldKeys turns key press events into held/released state.
//
// Terminals report key presses and auto-repeats but never key releases, so
// a key counts as held until it has not been seen for a number of frames.
// The window has to outlast the auto-repeat delay, otherwise the first
// repeat of a held key would look like a second press.
type HeldKeys struct {
	windows  map[core.Action]uint64
	lastSeen map[core.Action]uint64
}

// NewHeldKeys creates a tracker where keys stay held for releaseTicks
// frames after their last press or repeat.
func NewHeldKeys(releaseTicks int) *HeldKeys {
	window := uint64(max(releaseTicks, 1))
	return &HeldKeys{
		windows: map[core.Action]uint64{
			core.ActionLeft:  window,
			core.ActionRight: window,
			core.ActionFire:  window,
		},
		lastSeen: make(map[core.Action]uint64),
	}
}

// Press records a press (or repeat) of a held action at the given frame.
// Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action, frame uint64) {
	if _, ok := h.windows[a]; !ok {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	}
	h.lastSeen[a] = frame
}

// Held reports whether a is still held at the given frame.
func (h *HeldKeys) Held(a core.Action, frame uint64) bool {
	seen, ok := h.lastSeen[a]
	if !ok {
		return false
	}
	return frame-seen < h.windows[a]
}

// Frame builds the input frame for the given frame number and forgets keys
// whose hold has run out.
func (h *HeldKeys) Frame(frame uint64) core.InputFrame {
	in := core.NewInputFrame()
	for a := range h.lastSeen {
		if h.Held(a, frame) {
			in.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return in
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.lastSeen)
}
