package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// HoldTracker turns key events into held directions. Terminals report a key
// press and its auto-repeats but never the release, so a direction counts as
// held until no event for it has arrived for a number of ticks.
type HoldTracker struct {
	ticks int

	x     core.Tri
	xLeft int
}

// NewHoldTracker creates a tracker that releases a direction ticks ticks
// after its last key event. Non-positive values hold for a single tick.
func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{ticks: max(ticks, 1)}
}

// PressX records a horizontal key event. The opposite direction is released.
func (h *HoldTracker) PressX(d core.Tri) {
	h.x = d
	h.xLeft = h.ticks
}

// Release drops every held direction.
func (h *HoldTracker) Release() {
	h.x, h.xLeft = core.TriZero, 0
}

// Apply writes the held directions into f.
func (h *HoldTracker) Apply(f *core.InputFrame) {
	f.X = h.x
}

// Tick ages the held directions by one simulation tick.
func (h *HoldTracker) Tick() {
	if h.xLeft > 0 {
		h.xLeft--
		if h.xLeft == 0 {
			h.x = core.TriZero
		}
	}
}
