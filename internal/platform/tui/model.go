package tui

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorgate/internal/config"
	"github.com/vovakirdan/colorgate/internal/core"
)

// phase is the screen the model is showing.
type phase int

const (
	phaseWelcome phase = iota
	phasePopup
	phasePlaying
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game       core.Game
	palette    []core.Color
	screen     *core.Screen
	config     core.RuntimeConfig
	intro      config.IntroConfig
	keys       *KeyMapper
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	clock      func() time.Time
	phase      phase
	popupTicks int
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The palette colors the title on the welcome page.
func NewModel(game core.Game, palette []core.Color, cfg core.RuntimeConfig, intro config.IntroConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		palette:    palette,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		config:     cfg,
		intro:      intro,
		keys:       NewKeyMapper(),
		help:       h,
		holds:      NewHoldTracker(DefaultHoldDuration),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		clock:      time.Now,
		phase:      phaseWelcome,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseWelcome:
		if action == core.ActionConfirm || action == core.ActionSwitchColor {
			m = m.showPopup()
		}
	case phasePopup:
		// Any key dismisses the popup early
		m = m.beginPlay()
	case phasePlaying:
		switch action {
		case core.ActionLeft, core.ActionRight:
			m.holds.Press(action, m.clock())
		case core.ActionNone:
		default:
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleMouse treats a left click like a tap: it advances the intro screens,
// changes color while running and restarts otherwise.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.phase {
	case phaseWelcome:
		m = m.showPopup()
	case phasePopup:
		m = m.beginPlay()
	case phasePlaying:
		m.inputFrame.Set(core.ActionSwitchColor)
	}
	return m, nil
}

// handleResize processes window resize events.
// The canvas is fixed, so the session keeps running at any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseWelcome:
		return m, tickCmd(m.config.TickRate)
	case phasePopup:
		m.popupTicks--
		if m.popupTicks <= 0 {
			m = m.beginPlay()
		}
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame, m.clock())

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		// A key held into the crash must not steer the next run
		m.holds.Release()
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// showPopup leaves the welcome page for the timed credit popup.
func (m Model) showPopup() Model {
	if m.intro.PopupSeconds <= 0 {
		return m.beginPlay()
	}
	m.phase = phasePopup
	m.popupTicks = int(math.Ceil(m.intro.PopupSeconds * float64(m.config.TickRate)))
	m.logger.Debug("showing popup", "ticks", m.popupTicks)
	return m
}

// beginPlay enters the game screen and queues the first start.
func (m Model) beginPlay() Model {
	m.phase = phasePlaying
	m.popupTicks = 0
	m.inputFrame.Set(core.ActionConfirm)
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseWelcome:
		return renderWelcome(m.width, m.height, m.palette)
	case phasePopup:
		return renderPopup(m.width, m.height, m.intro.PopupText)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, palette []core.Color, cfg core.RuntimeConfig, intro config.IntroConfig, logger *log.Logger) error {
	model := NewModel(game, palette, cfg, intro, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks change color like taps
	)

	_, err := p.Run()
	return err
}
