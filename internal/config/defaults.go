package config

import (
	_ "embed"

	"github.com/vovakirdan/colorgate/internal/core"
)

//go:embed defaults/colorgate.yaml
var defaultColorGateYAML []byte

// DefaultColorGateConfig returns the default Color Gate configuration.
// It mirrors defaults/colorgate.yaml and is used if the embedded file cannot be parsed.
func DefaultColorGateConfig() ColorGateConfig {
	return ColorGateConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Palette: defaultPalette(),
		Player: PlayerConfig{
			Radius:       20,
			Speed:        5,
			BottomOffset: 50,
		},
		Obstacles: ObstacleConfig{
			Height:          30,
			GapWidth:        100,
			GapMargin:       50,
			SpawnY:          -50,
			BaseSpeed:       2,
			BaseSpawnPeriod: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			RampEvery:  500,
			SpeedStep:  0.5,
			PeriodStep: 10,
			MinPeriod:  50,
		},
		Intro: IntroConfig{
			PopupSeconds: 2,
			PopupText:    "Made with Go",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultColorGateYAML
}

func defaultPalette() []string {
	colors := core.DefaultPalette()
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = string(c)
	}
	return out
}
