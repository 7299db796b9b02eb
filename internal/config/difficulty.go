package config

// DifficultyManager applies the step-wise difficulty ramp: every RampEvery
// frames the obstacle speed rises by SpeedStep and the spawn period shrinks by
// PeriodStep, never dropping below MinPeriod.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampEvery > 0
}

// Due reports whether a ramp fires on the given frame.
func (d *DifficultyManager) Due(frame int) bool {
	return d.IsEnabled() && frame > 0 && frame%d.cfg.RampEvery == 0
}

// Ramp returns the speed and spawn period that apply after the given frame.
// Off-schedule frames return the inputs unchanged.
func (d *DifficultyManager) Ramp(frame int, speed float64, period int) (float64, int) {
	if !d.Due(frame) {
		return speed, period
	}
	return speed + d.cfg.SpeedStep, max(d.cfg.MinPeriod, period-d.cfg.PeriodStep)
}
