package colorgate

import "github.com/vovakirdan/colorgate/internal/core"

// Step advances the run by one frame. Outside StateRunning it only
// reports the current state.
func (s *Session) Step() core.StepResult {
	if s.state != StateRunning {
		return core.StepResult{State: s.GameState()}
	}

	s.movePlayer()

	s.frame++

	if s.frame%s.period == 0 {
		s.obstacles = append(s.obstacles, s.generator.Next())
	}

	// The ramp runs on its own schedule, independent of spawning.
	s.speed, s.period = s.difficulty.Ramp(s.frame, s.speed, s.period)

	if s.advanceObstacles() {
		s.state = StateGameOver
	}

	return core.StepResult{State: s.GameState()}
}

// movePlayer applies held directions. Each held direction applies
// independently against the pre-move x, so both keys cancel out only
// away from the walls.
func (s *Session) movePlayer() {
	p := &s.player
	w := s.cfg.Canvas.Width

	canLeft := s.left && p.X-p.Radius-p.Speed >= 0
	canRight := s.right && p.X+p.Radius+p.Speed <= w

	if canLeft {
		p.X -= p.Speed
	}
	if canRight {
		p.X += p.Speed
	}
}

// advanceObstacles moves every obstacle, newest first, and resolves
// collisions, scoring and pruning. It returns true on a fatal collision,
// leaving older obstacles untouched for this frame.
func (s *Session) advanceObstacles() bool {
	for i := len(s.obstacles) - 1; i >= 0; i-- {
		o := &s.obstacles[i]
		o.Y += s.speed

		if o.Fatal(s.player) {
			return true
		}

		if !o.Passed && o.Bottom() > s.player.Bottom() {
			o.Passed = true
			s.score++
		}

		if o.Y > s.cfg.Canvas.Height {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
		}
	}
	return false
}
