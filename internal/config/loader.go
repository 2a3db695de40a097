package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadColorBang loads Color Bang configuration.
// Search order: customPath -> ~/.colorbang/configs/colorbang.yaml -> ./configs/colorbang.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadColorBang(customPath string) (ColorBangConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultColorBangConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("colorbang.yaml"), filepath.Join("configs", "colorbang.yaml")} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultColorBangConfig()
	if err := yaml.Unmarshal(defaultColorBangYAML, &cfg); err != nil {
		return DefaultColorBangConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads path and reports whether it produced a valid config.
func tryLoad(path string) (ColorBangConfig, bool) {
	cfg := DefaultColorBangConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, cfg.Validate() == nil
}

// userConfigPath returns the path under the user's Color Bang directory.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.colorbang, or "" when the home directory is unknown.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorbang")
}

// ApplyColorBangPreset modifies the config based on a difficulty preset.
func ApplyColorBangPreset(cfg *ColorBangConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Radius = 20
		cfg.Waves.Initial = 2
		cfg.Waves.PerWave = 1
		cfg.Weapon.ChargesPerWave = 15
	case DifficultyHard:
		cfg.Player.Radius = 12
		cfg.Waves.Initial = 5
		cfg.Waves.PerWave = 3
		cfg.Weapon.ChargesPerWave = 5
	}
}
