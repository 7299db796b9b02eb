package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadColorGate loads Color Gate configuration.
// Search order: customPath -> ~/.colorgate/colorgate.yaml -> ./configs/colorgate.yaml -> embedded default
// Files with a .toml extension are decoded as TOML, everything else as YAML.
func LoadColorGate(customPath string) (ColorGateConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorGateConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return ColorGateConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("colorgate.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(userCfgPath, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/colorgate.yaml"); err == nil {
		if cfg, err := decode("configs/colorgate.yaml", data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("colorgate.yaml", DefaultYAML())
	if err != nil {
		return DefaultColorGateConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data as TOML or YAML depending on the file extension.
// Fields missing from the file keep their default values.
func decode(path string, data []byte) (ColorGateConfig, error) {
	cfg := DefaultColorGateConfig()
	// A file that sets the palette replaces it rather than merging entries.
	cfg.Palette = nil

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return ColorGateConfig{}, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColorGateConfig{}, err
	}

	if cfg.Palette == nil {
		cfg.Palette = DefaultColorGateConfig().Palette
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg ColorGateConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorgate", filename)
}

// ApplyColorGatePreset modifies the config based on a difficulty preset.
func ApplyColorGatePreset(cfg *ColorGateConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	if preset != "" {
		cfg.Difficulty.Enabled = true
	}

	// Adjust the starting pace based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseSpeed *= 0.75
		cfg.Obstacles.BaseSpawnPeriod += 20
	case DifficultyHard:
		cfg.Obstacles.BaseSpeed *= 1.5
		cfg.Obstacles.BaseSpawnPeriod = max(cfg.Difficulty.MinPeriod, cfg.Obstacles.BaseSpawnPeriod-20)
	}
}
