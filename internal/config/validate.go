package config

import (
	"fmt"

	"github.com/vovakirdan/colorgate/internal/core"
)

// PaletteSize is the number of gate colors a palette must contain.
const PaletteSize = 4

// ValidationError contains details about a configuration precondition failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the preconditions the simulation relies on.
// The game has no runtime recovery for a bad canvas or palette, so these are
// rejected before a session is built.
func (c ColorGateConfig) Validate() error {
	if err := c.validateCanvas(); err != nil {
		return err
	}
	if err := c.validatePalette(); err != nil {
		return err
	}
	if err := c.validatePlayer(); err != nil {
		return err
	}
	if err := c.validateObstacles(); err != nil {
		return err
	}
	return c.validateDifficulty()
}

func (c ColorGateConfig) validateCanvas() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_CANVAS",
			Message: fmt.Sprintf("canvas must have positive size, got %gx%g", c.Canvas.Width, c.Canvas.Height),
		}
	}
	return nil
}

func (c ColorGateConfig) validatePalette() error {
	if len(c.Palette) != PaletteSize {
		return ValidationError{
			Code:    "INVALID_PALETTE",
			Message: fmt.Sprintf("palette must contain exactly %d colors, got %d", PaletteSize, len(c.Palette)),
		}
	}

	seen := make(map[core.Color]bool, len(c.Palette))
	for _, p := range c.Palette {
		parsed, err := core.ParseColor(p)
		if err != nil {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("palette entry %q is not a hex color", p),
			}
		}
		if seen[parsed] {
			return ValidationError{
				Code:    "DUPLICATE_COLOR",
				Message: fmt.Sprintf("palette entry %q appears more than once", p),
			}
		}
		seen[parsed] = true
	}
	return nil
}

func (c ColorGateConfig) validatePlayer() error {
	p := c.Player
	if p.Radius <= 0 || p.Speed <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("player radius and speed must be positive, got radius=%g speed=%g", p.Radius, p.Speed),
		}
	}
	if 2*p.Radius > c.Canvas.Width {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("player diameter %g does not fit canvas width %g", 2*p.Radius, c.Canvas.Width),
		}
	}
	if p.BottomOffset < p.Radius || p.BottomOffset > c.Canvas.Height {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("player bottom_offset %g must be within [%g, %g]", p.BottomOffset, p.Radius, c.Canvas.Height),
		}
	}
	return nil
}

func (c ColorGateConfig) validateObstacles() error {
	o := c.Obstacles
	if o.Height <= 0 || o.GapWidth <= 0 {
		return ValidationError{
			Code:    "INVALID_OBSTACLE",
			Message: fmt.Sprintf("obstacle height and gap_width must be positive, got height=%g gap_width=%g", o.Height, o.GapWidth),
		}
	}
	if o.GapMargin < 0 || 2*o.GapMargin >= c.Canvas.Width {
		return ValidationError{
			Code:    "INVALID_OBSTACLE",
			Message: fmt.Sprintf("gap_margin %g leaves no room for a gap on a %g-wide canvas", o.GapMargin, c.Canvas.Width),
		}
	}
	if o.BaseSpeed <= 0 || o.BaseSpawnPeriod <= 0 {
		return ValidationError{
			Code:    "INVALID_OBSTACLE",
			Message: fmt.Sprintf("base_speed and base_spawn_period must be positive, got %g and %d", o.BaseSpeed, o.BaseSpawnPeriod),
		}
	}
	if o.SpawnY+o.Height > 0 {
		return ValidationError{
			Code:    "INVALID_OBSTACLE",
			Message: fmt.Sprintf("spawn_y %g puts a %g-high barrier on screen; spawn_y+height must be <= 0", o.SpawnY, o.Height),
		}
	}
	return nil
}

func (c ColorGateConfig) validateDifficulty() error {
	d := c.Difficulty
	if !d.Enabled {
		return nil
	}
	if d.RampEvery <= 0 || d.MinPeriod <= 0 {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: fmt.Sprintf("ramp_every and min_period must be positive, got %d and %d", d.RampEvery, d.MinPeriod),
		}
	}
	if d.SpeedStep < 0 || d.PeriodStep < 0 {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: "speed_step and period_step must not be negative",
		}
	}
	if c.Obstacles.BaseSpawnPeriod < d.MinPeriod {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: fmt.Sprintf("base_spawn_period %d is below min_period %d", c.Obstacles.BaseSpawnPeriod, d.MinPeriod),
		}
	}
	return nil
}
