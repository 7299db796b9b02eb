package tui

import (
	"time"

	"github.com/vovakirdan/colorgate/internal/core"
)

// DefaultHoldDuration is how long a direction counts as held after its last
// key press. Terminals report only presses and auto-repeats, never releases.
const DefaultHoldDuration = 150 * time.Millisecond

// HoldTracker turns key presses into level-triggered directional input.
type HoldTracker struct {
	hold  time.Duration
	left  time.Time
	right time.Time
}

// NewHoldTracker creates a tracker; a non-positive hold uses DefaultHoldDuration.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HoldTracker{hold: hold}
}

// Press records a directional key press at now.
// Auto-repeat only follows the most recent key, so pressing one direction
// releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	}
}

// Held reports whether the direction is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	var last time.Time
	switch a {
	case core.ActionLeft:
		last = h.left
	case core.ActionRight:
		last = h.right
	default:
		return false
	}
	return !last.IsZero() && now.Sub(last) < h.hold
}

// Apply sets the held directions on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	if h.Held(core.ActionLeft, now) {
		frame.Set(core.ActionLeft)
	}
	if h.Held(core.ActionRight, now) {
		frame.Set(core.ActionRight)
	}
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left = time.Time{}
	h.right = time.Time{}
}
