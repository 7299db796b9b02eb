package colorgate

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorgate/internal/config"
	"github.com/vovakirdan/colorgate/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar   = '●'
	BarrierChar  = '█'
	BorderChar   = '│'
	hudHeight    = 1
	cellAspect   = 2.0 // Terminal cells are about twice as tall as wide
	minFieldSide = 1
)

var _ core.Game = (*Game)(nil)

// Game adapts a Session to the cell-based frame driver.
// Edge actions start, restart and recolor; held directions are levels.
type Game struct {
	cfg     config.ColorGateConfig
	session *Session
	logger  *log.Logger
}

// NewGame validates cfg and returns a game ready for Reset.
func NewGame(cfg config.ColorGateConfig, logger *log.Logger) (*Game, error) {
	session, err := New(cfg, 0)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, session: session, logger: logger}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "colorgate"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Gate"
}

// Reset replaces the session with a fresh, not yet started one.
func (g *Game) Reset(rt core.RuntimeConfig) {
	session, err := New(g.cfg, rt.Seed)
	if err != nil {
		// cfg was validated by NewGame
		g.logger.Error("could not reset session", "error", err)
		return
	}
	g.session = session
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one frame of input and advances the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	s.SetDirectionalInput(DirLeft, in.Has(core.ActionLeft))
	s.SetDirectionalInput(DirRight, in.Has(core.ActionRight))

	if s.State() == StateRunning {
		if in.Has(core.ActionSwitchColor) {
			if c, ok := s.TriggerColorChange(); ok {
				g.logger.Debug("color changed", "color", c, "frame", s.Frame())
			}
		}
	} else if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || in.Has(core.ActionSwitchColor) {
		g.start()
	}

	before := s.State()
	res := s.Step()
	if before == StateRunning && s.State() == StateGameOver {
		g.logger.Info("game over", "score", s.Score(), "frame", s.Frame())
	}
	return res
}

func (g *Game) start() {
	s := g.session
	restart := s.Started()
	s.StartOrRestart()
	if restart {
		g.logger.Info("session restarted")
	} else {
		g.logger.Info("session started")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.GameState()
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := FitCanvas(g.cfg.Canvas.Width, g.cfg.Canvas.Height, dst.Width(), dst.Height())
	vp := core.Viewport{
		CanvasW: g.cfg.Canvas.Width,
		CanvasH: g.cfg.Canvas.Height,
		CellsW:  field.W,
		CellsH:  field.H,
	}

	// Side borders
	dst.DrawVLine(field.X-1, field.Y, field.H, BorderChar)
	dst.DrawVLine(field.Right(), field.Y, field.H, BorderChar)

	for _, d := range g.session.Drawables() {
		switch d.Kind {
		case ShapeRect:
			r := clip(vp.RectToCells(d.X, d.Y, d.W, d.H), field.W, field.H)
			r.X += field.X
			r.Y += field.Y
			dst.FillRect(r, BarrierChar, d.Fill)
		case ShapeCircle:
			sx, sy := vp.ScaleX(), vp.ScaleY()
			dst.FillEllipse(
				float64(field.X)+d.X*sx,
				float64(field.Y)+d.Y*sy,
				d.R*sx, d.R*sy,
				PlayerChar, d.Fill,
			)
		}
	}

	// Draw HUD
	dst.DrawText(field.X, 0, fmt.Sprintf("Score: %d", g.session.Score()))

	switch g.session.State() {
	case StateNotStarted:
		g.drawCenteredMessage(dst, "COLOR GATE", "Press Enter to start")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// FitCanvas returns the screen area that shows the whole canvas at its
// aspect ratio, below the HUD row and between two border columns.
func FitCanvas(canvasW, canvasH float64, screenW, screenH int) core.Rect {
	availW := core.Max(minFieldSide, screenW-2)
	availH := core.Max(minFieldSide, screenH-hudHeight)

	fieldH := availH
	fieldW := int(math.Round(float64(fieldH) * canvasW / canvasH * cellAspect))
	if fieldW > availW {
		fieldW = availW
		fieldH = int(math.Round(float64(fieldW) * canvasH / canvasW / cellAspect))
	}
	fieldW = core.Clamp(fieldW, minFieldSide, availW)
	fieldH = core.Clamp(fieldH, minFieldSide, availH)

	return core.NewRect((screenW-fieldW)/2, hudHeight, fieldW, fieldH)
}

// clip intersects r with the field area [0, w) x [0, h).
func clip(r core.Rect, w, h int) core.Rect {
	if !r.Intersects(core.NewRect(0, 0, w, h)) {
		return core.Rect{}
	}
	x0 := core.Clamp(r.X, 0, w)
	y0 := core.Clamp(r.Y, 0, h)
	x1 := core.Clamp(r.Right(), 0, w)
	y1 := core.Clamp(r.Bottom(), 0, h)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
