package colorgate

import "github.com/vovakirdan/colorgate/internal/core"

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Frame       int
	State       string
	Score       int
	PlayerX     float64
	PlayerColor core.Color
	Obstacles   int
	Speed       float64
	SpawnPeriod int
	// Gap positions of live obstacles, oldest first.
	Gaps []float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	gaps := make([]float64, len(s.obstacles))
	for i, o := range s.obstacles {
		gaps[i] = o.GapPosition
	}
	return Snapshot{
		Frame:       s.frame,
		State:       s.state.String(),
		Score:       s.score,
		PlayerX:     s.player.X,
		PlayerColor: s.player.Color,
		Obstacles:   len(s.obstacles),
		Speed:       s.speed,
		SpawnPeriod: s.period,
		Gaps:        gaps,
	}
}
