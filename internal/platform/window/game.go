// Package window runs Color Gate in a desktop or mobile window with Ebiten.
// Ebiten's Update is the frame driver: one simulation step per tick.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/colorgate/internal/config"
	"github.com/vovakirdan/colorgate/internal/core"
	"github.com/vovakirdan/colorgate/internal/games/colorgate"
)

type phase int

const (
	phaseWelcome phase = iota
	phasePopup
	phasePlaying
)

var (
	background = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	overlay    = color.NRGBA{A: 0xb0}
)

// frameInput is the device state sampled once per tick.
type frameInput struct {
	left, right bool // Held arrows or steering drags
	tap         bool // Mouse click or touch start
	confirm     bool // Enter or Space
	restart     bool
	quit        bool
}

// Game implements ebiten.Game for a single Color Gate session.
type Game struct {
	cfg     config.ColorGateConfig
	session *colorgate.Session
	logger  *log.Logger
	tps     int

	phase   phase
	popup   *Popup
	strokes map[*Stroke]struct{}
}

// NewGame creates a window game; tps is the simulation rate.
func NewGame(cfg config.ColorGateConfig, seed int64, tps int, logger *log.Logger) (*Game, error) {
	session, err := colorgate.New(cfg, seed)
	if err != nil {
		return nil, err
	}
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		session: session,
		logger:  logger,
		tps:     tps,
		strokes: map[*Stroke]struct{}{},
	}, nil
}

// Update samples input and advances one frame.
func (g *Game) Update() error {
	return g.advance(g.sampleInput())
}

func (g *Game) sampleInput() frameInput {
	in := frameInput{
		left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
		in.tap = true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		g.strokes[NewStroke(&TouchStrokeSource{ID: id})] = struct{}{}
		in.tap = true
	}

	for s := range g.strokes {
		s.Update()
		if s.IsReleased() {
			delete(g.strokes, s)
			continue
		}
		l, r := s.Steering()
		in.left = in.left || l
		in.right = in.right || r
	}
	return in
}

// advance runs one tick of the screen flow and the simulation.
func (g *Game) advance(in frameInput) error {
	if in.quit {
		return ebiten.Termination
	}

	switch g.phase {
	case phaseWelcome:
		if in.tap || in.confirm {
			g.showPopup()
		}
		return nil
	case phasePopup:
		g.popup.Update(1 / float32(g.tps))
		if in.tap || in.confirm || g.popup.Done() {
			g.beginPlay()
		}
		return nil
	}

	s := g.session
	s.SetDirectionalInput(colorgate.DirLeft, in.left)
	s.SetDirectionalInput(colorgate.DirRight, in.right)

	if s.State() == colorgate.StateRunning {
		if in.tap || in.confirm {
			if c, ok := s.TriggerColorChange(); ok {
				g.logger.Debug("color changed", "color", c, "frame", s.Frame())
			}
		}
	} else if in.tap || in.confirm || in.restart {
		s.StartOrRestart()
		g.logger.Info("session restarted")
	}

	before := s.State()
	s.Step()
	if before == colorgate.StateRunning && s.State() == colorgate.StateGameOver {
		g.logger.Info("game over", "score", s.Score(), "frame", s.Frame())
	}
	return nil
}

func (g *Game) showPopup() {
	if g.cfg.Intro.PopupSeconds <= 0 {
		g.beginPlay()
		return
	}
	g.popup = NewPopup(g.cfg.Intro.PopupText, g.cfg.Intro.PopupSeconds)
	g.phase = phasePopup
}

func (g *Game) beginPlay() {
	g.popup = nil
	g.phase = phasePlaying
	g.session.StartOrRestart()
	g.logger.Info("session started")
}

// Draw renders the drawables and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height

	switch g.phase {
	case phaseWelcome:
		drawLines(screen, w, h, "COLOR GATE", "",
			"Arrows or drag to steer",
			"Click or tap to switch color",
			"Pass the gap, or a barrier of your color", "",
			"Click to play")
		return
	case phasePopup:
		a := g.popup.Alpha()
		box := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(a * 0x40)}
		vector.DrawFilledRect(screen, float32(w*0.1), float32(h*0.4), float32(w*0.8), float32(h*0.2), box, false)
		if a > 0.5 {
			drawLines(screen, w, h, g.popup.Text)
		}
		return
	}

	for _, d := range g.session.Drawables() {
		drawShape(screen, d)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.session.Score()), 8, 8)

	if g.session.State() == colorgate.StateGameOver {
		vector.DrawFilledRect(screen, 0, float32(h*0.35), float32(w), float32(h*0.3), overlay, false)
		drawLines(screen, w, h, "GAME OVER", fmt.Sprintf("Score: %d", g.session.Score()), "", "Click to restart")
	}
}

func drawShape(screen *ebiten.Image, d colorgate.Drawable) {
	clr := d.Fill.RGBA()
	switch d.Kind {
	case colorgate.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.R), clr, true)
	case colorgate.ShapeRect:
		if d.W <= 0 || d.H <= 0 {
			return
		}
		vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), clr, false)
	}
}

// drawLines prints centered lines around the middle of the canvas.
func drawLines(screen *ebiten.Image, w, h float64, lines ...string) {
	const (
		charW = 6
		lineH = 16
	)
	y := int(h/2) - len(lines)*lineH/2
	for _, line := range lines {
		x := int(w/2) - len(line)*charW/2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += lineH
	}
}

// Layout keeps the logical screen at the canvas size; Ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Canvas.Width), int(g.cfg.Canvas.Height)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(g.cfg.Canvas.Width*scale), int(g.cfg.Canvas.Height*scale))
	ebiten.SetWindowTitle("Color Gate")
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
