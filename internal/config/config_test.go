package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorgate/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadColorGate("")
	require.NoError(t, err)
	assert.Equal(t, DefaultColorGateConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestDefaultYAMLIsComplete(t *testing.T) {
	var cfg ColorGateConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultColorGateConfig(), cfg)
}

func TestLoadCustomYAMLKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("canvas:\n  width: 500\n  height: 700\nobstacles:\n  base_speed: 3\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadColorGate(path)
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Canvas.Width)
	assert.Equal(t, 700.0, cfg.Canvas.Height)
	assert.Equal(t, 3.0, cfg.Obstacles.BaseSpeed)
	assert.Equal(t, 100, cfg.Obstacles.BaseSpawnPeriod, "unset fields keep defaults")
	assert.Equal(t, DefaultColorGateConfig().Palette, cfg.Palette)
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`palette = ["#000001", "#000002", "#000003", "#000004"]

[canvas]
width = 320
height = 480

[difficulty]
enabled = false
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadColorGate(path)
	require.NoError(t, err)

	assert.Equal(t, 320.0, cfg.Canvas.Width)
	assert.Equal(t, []string{"#000001", "#000002", "#000003", "#000004"}, cfg.Palette)
	assert.False(t, cfg.Difficulty.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadColorGate(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas: [1, 2"), 0o600))

	_, err := LoadColorGate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".colorgate")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colorgate.yaml"), []byte("player:\n  speed: 9\n"), 0o600))

	cfg, err := LoadColorGate("")
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.Player.Speed)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ColorGateConfig)
		code   string
	}{
		{"zero canvas", func(c *ColorGateConfig) { c.Canvas.Width = 0 }, "INVALID_CANVAS"},
		{"empty palette", func(c *ColorGateConfig) { c.Palette = nil }, "INVALID_PALETTE"},
		{"three colors", func(c *ColorGateConfig) { c.Palette = c.Palette[:3] }, "INVALID_PALETTE"},
		{"bad hex", func(c *ColorGateConfig) { c.Palette[0] = "red" }, "INVALID_COLOR"},
		{"duplicate color", func(c *ColorGateConfig) { c.Palette[1] = "#ff5252" }, "DUPLICATE_COLOR"},
		{"zero radius", func(c *ColorGateConfig) { c.Player.Radius = 0 }, "INVALID_PLAYER"},
		{"player wider than canvas", func(c *ColorGateConfig) { c.Player.Radius = 300 }, "INVALID_PLAYER"},
		{"zero gap", func(c *ColorGateConfig) { c.Obstacles.GapWidth = 0 }, "INVALID_OBSTACLE"},
		{"margin too wide", func(c *ColorGateConfig) { c.Obstacles.GapMargin = 200 }, "INVALID_OBSTACLE"},
		{"zero spawn period", func(c *ColorGateConfig) { c.Obstacles.BaseSpawnPeriod = 0 }, "INVALID_OBSTACLE"},
		{"barrier spawns on screen", func(c *ColorGateConfig) { c.Obstacles.SpawnY = 560 }, "INVALID_OBSTACLE"},
		{"barrier overlaps top edge", func(c *ColorGateConfig) { c.Obstacles.SpawnY = -10 }, "INVALID_OBSTACLE"},
		{"zero ramp interval", func(c *ColorGateConfig) { c.Difficulty.RampEvery = 0 }, "INVALID_DIFFICULTY"},
		{"spawn period below floor", func(c *ColorGateConfig) { c.Obstacles.BaseSpawnPeriod = 20 }, "INVALID_DIFFICULTY"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultColorGateConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}

func TestValidateSkipsDisabledDifficulty(t *testing.T) {
	cfg := DefaultColorGateConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.RampEvery = 0

	assert.NoError(t, cfg.Validate())

	// Without a ramp the floor does not apply
	cfg.Obstacles.BaseSpawnPeriod = 20
	assert.NoError(t, cfg.Validate())
}

func TestPresetsKeepConfigValid(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultColorGateConfig()
			ApplyColorGatePreset(&cfg, preset)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestPaletteColorsNormalized(t *testing.T) {
	cfg := DefaultColorGateConfig()
	cfg.Palette = []string{"#ff5252", "#ffeb3b", "#4caf50", "#2196f3"}

	assert.Equal(t, core.DefaultPalette(), cfg.PaletteColors())
}

func TestApplyPresets(t *testing.T) {
	base := DefaultColorGateConfig()

	easy := DefaultColorGateConfig()
	ApplyColorGatePreset(&easy, DifficultyEasy)
	assert.Less(t, easy.Obstacles.BaseSpeed, base.Obstacles.BaseSpeed)
	assert.Greater(t, easy.Obstacles.BaseSpawnPeriod, base.Obstacles.BaseSpawnPeriod)

	hard := DefaultColorGateConfig()
	ApplyColorGatePreset(&hard, DifficultyHard)
	assert.Greater(t, hard.Obstacles.BaseSpeed, base.Obstacles.BaseSpeed)
	assert.GreaterOrEqual(t, hard.Obstacles.BaseSpawnPeriod, hard.Difficulty.MinPeriod)

	normal := DefaultColorGateConfig()
	ApplyColorGatePreset(&normal, DifficultyNormal)
	assert.Equal(t, base, normal)

	fixed := DefaultColorGateConfig()
	ApplyColorGatePreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset(""))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultColorGateConfig()
	cfg.Canvas.Width = 480

	data, err := Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadColorGate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
