// Package colorgate implements the Color Gate game loop: a disc that
// slides along the bottom of a fixed canvas while color-gated barriers
// scroll down toward it.
package colorgate

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/colorgate/internal/config"
	"github.com/vovakirdan/colorgate/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

// String returns the state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Direction is a lateral movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Session owns all state of one Color Gate run and its restarts.
// It is not safe for concurrent use; the frame driver serializes calls.
type Session struct {
	cfg        config.ColorGateConfig
	palette    Palette
	rng        *rand.Rand
	generator  *Generator
	difficulty *config.DifficultyManager

	player    Player
	obstacles []Obstacle // Oldest first

	state   State
	started bool
	score   int
	frame   int
	speed   float64
	period  int

	// Directional input is level-triggered and survives restarts.
	left  bool
	right bool
}

// New validates cfg and returns a session in StateNotStarted.
func New(cfg config.ColorGateConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("colorgate: invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	palette := Palette(cfg.PaletteColors())

	s := &Session{
		cfg:        cfg,
		palette:    palette,
		rng:        rng,
		generator:  NewGenerator(rng, palette, cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	// Before the first start the disc shows the first palette color.
	s.reset(palette[0])
	return s, nil
}

// reset reinitializes everything owned by a single run, painting the
// player with c.
func (s *Session) reset(c core.Color) {
	s.player = Player{
		X:      s.cfg.Canvas.Width / 2,
		Y:      s.cfg.Canvas.Height - s.cfg.Player.BottomOffset,
		Radius: s.cfg.Player.Radius,
		Speed:  s.cfg.Player.Speed,
		Color:  c,
	}
	s.obstacles = nil
	s.score = 0
	s.frame = 0
	s.speed = s.cfg.Obstacles.BaseSpeed
	s.period = s.cfg.Obstacles.BaseSpawnPeriod
}

// StartOrRestart reinitializes the run and enters StateRunning.
// It is accepted from any state.
func (s *Session) StartOrRestart() {
	s.reset(s.palette.Random(s.rng))
	s.state = StateRunning
	s.started = true
}

// SetDirectionalInput records whether dir is currently held.
func (s *Session) SetDirectionalInput(dir Direction, asserted bool) {
	switch dir {
	case DirLeft:
		s.left = asserted
	case DirRight:
		s.right = asserted
	}
}

// TriggerColorChange switches the player to a different palette color.
// It returns false and changes nothing unless the session is running.
func (s *Session) TriggerColorChange() (core.Color, bool) {
	if s.state != StateRunning {
		return s.player.Color, false
	}
	s.player.Color = s.palette.RandomExcept(s.rng, s.player.Color)
	return s.player.Color, true
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the number of obstacles passed in the current run.
func (s *Session) Score() int { return s.score }

// Frame returns the number of steps taken in the current run.
func (s *Session) Frame() int { return s.frame }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Obstacles returns a copy of the live obstacles, oldest first.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Speed returns the current obstacle scroll speed.
func (s *Session) Speed() float64 { return s.speed }

// SpawnPeriod returns the current number of frames between spawns.
func (s *Session) SpawnPeriod() int { return s.period }

// Started reports whether the session has ever been started.
func (s *Session) Started() bool { return s.started }

// GameState summarizes the session for the platform layer.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		Running:  s.state == StateRunning,
		GameOver: s.state == StateGameOver,
		Started:  s.started,
	}
}

// Drawables projects the current player and obstacles to shapes.
func (s *Session) Drawables() []Drawable {
	return Project(s.player, s.obstacles, s.cfg.Canvas.Width)
}
