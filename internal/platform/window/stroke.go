package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DragThreshold is the horizontal travel in pixels a drag needs, measured
// from where it last changed direction, before it steers the player.
const DragThreshold = 5

// StrokeSource represents an input device that provides strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID ebiten.TouchID
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke tracks one press-drag-release gesture and the direction it steers.
type Stroke struct {
	source StrokeSource

	// anchorX is where the drag last changed direction.
	anchorX int

	currentX int
	currentY int

	left     bool
	right    bool
	released bool
}

// NewStroke starts a stroke at the source's current position.
func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		anchorX:  cx,
		currentX: cx,
		currentY: cy,
	}
}

// Update polls the source. A released stroke steers nowhere.
func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		s.left, s.right = false, false
		return
	}
	s.track(s.source.Position())
}

func (s *Stroke) track(x, y int) {
	s.currentX, s.currentY = x, y
	switch {
	case x < s.anchorX-DragThreshold:
		s.left, s.right = true, false
		s.anchorX = x
	case x > s.anchorX+DragThreshold:
		s.left, s.right = false, true
		s.anchorX = x
	}
}

// IsReleased reports whether the gesture has ended.
func (s *Stroke) IsReleased() bool {
	return s.released
}

// Position returns the latest pointer position.
func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

// Steering returns the directions the drag currently asserts.
func (s *Stroke) Steering() (left, right bool) {
	return s.left, s.right
}
