// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for Color Gate.
package config

import "github.com/vovakirdan/colorgate/internal/core"

// ColorGateConfig contains all configuration for the Color Gate game.
type ColorGateConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas" toml:"canvas"`
	Palette    []string         `yaml:"palette" toml:"palette"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Intro      IntroConfig      `yaml:"intro" toml:"intro"`
}

// CanvasConfig defines the fixed playfield in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player disc.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	Speed        float64 `yaml:"speed" toml:"speed"`                 // Horizontal units per frame
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance of the disc center above the canvas bottom
}

// ObstacleConfig defines barrier geometry and the base scroll parameters.
type ObstacleConfig struct {
	Height          float64 `yaml:"height" toml:"height"`
	GapWidth        float64 `yaml:"gap_width" toml:"gap_width"`
	GapMargin       float64 `yaml:"gap_margin" toml:"gap_margin"` // Minimum distance of the gap's left edge from either canvas edge
	SpawnY          float64 `yaml:"spawn_y" toml:"spawn_y"`
	BaseSpeed       float64 `yaml:"base_speed" toml:"base_speed"`
	BaseSpawnPeriod int     `yaml:"base_spawn_period" toml:"base_spawn_period"` // Frames between spawns
}

// DifficultyConfig defines the step-wise difficulty ramp.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	RampEvery  int     `yaml:"ramp_every" toml:"ramp_every"`   // Frames between ramps
	SpeedStep  float64 `yaml:"speed_step" toml:"speed_step"`   // Added to obstacle speed per ramp
	PeriodStep int     `yaml:"period_step" toml:"period_step"` // Removed from spawn period per ramp
	MinPeriod  int     `yaml:"min_period" toml:"min_period"`   // Spawn period floor
}

// IntroConfig defines the welcome popup shown before the first session.
type IntroConfig struct {
	PopupSeconds float64 `yaml:"popup_seconds" toml:"popup_seconds"`
	PopupText    string  `yaml:"popup_text" toml:"popup_text"`
}

// PaletteColors returns the palette as core colors.
// Entries are assumed to have passed Validate.
func (c ColorGateConfig) PaletteColors() []core.Color {
	colors := make([]core.Color, 0, len(c.Palette))
	for _, p := range c.Palette {
		parsed, err := core.ParseColor(p)
		if err != nil {
			parsed = core.Color(p)
		}
		colors = append(colors, parsed)
	}
	return colors
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty or unrecognized string yields "" (use config as loaded).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
