package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRampOnlyOnSchedule(t *testing.T) {
	d := NewDifficultyManager(DefaultColorGateConfig().Difficulty)

	speed, period := d.Ramp(499, 2, 100)
	assert.Equal(t, 2.0, speed)
	assert.Equal(t, 100, period)

	speed, period = d.Ramp(500, 2, 100)
	assert.Equal(t, 2.5, speed)
	assert.Equal(t, 90, period)

	assert.False(t, d.Due(0), "frame zero never ramps")
	assert.True(t, d.Due(1000))
}

func TestRampPeriodFloor(t *testing.T) {
	d := NewDifficultyManager(DefaultColorGateConfig().Difficulty)

	speed, period := 2.0, 100
	for frame := 500; frame <= 500*20; frame += 500 {
		speed, period = d.Ramp(frame, speed, period)
		assert.GreaterOrEqual(t, period, 50)
	}
	assert.Equal(t, 50, period)
	assert.Equal(t, 12.0, speed)
}

func TestRampDisabled(t *testing.T) {
	cfg := DefaultColorGateConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	assert.False(t, d.IsEnabled())
	speed, period := d.Ramp(500, 2, 100)
	assert.Equal(t, 2.0, speed)
	assert.Equal(t, 100, period)
}
