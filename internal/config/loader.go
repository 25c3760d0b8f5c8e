package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in each config directory.
const ConfigFile = "office.yaml"

// LoadOffice loads the office chase configuration.
// Search order: customPath -> ~/.officechase/configs/office.yaml -> ./configs/office.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial YAML only overrides
// the keys it names. A custom path that fails to read, parse or validate is an
// error; the implicit locations are skipped when they do not load cleanly.
func LoadOffice(customPath string) (OfficeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return DefaultOfficeConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultOfficeConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultOfficeConfig()
	if err := yaml.Unmarshal(defaultOfficeYAML, &cfg); err != nil {
		return DefaultOfficeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile(path string) (OfficeConfig, error) {
	cfg := DefaultOfficeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".officechase", "configs", filename)
}

// UserConfigDir returns ~/.officechase, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".officechase")
}

// ApplyOfficePreset modifies the config based on a difficulty preset.
func ApplyOfficePreset(cfg *OfficeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Executives.VisionDistance = 5
		cfg.Executives.ScaredTicks = 240
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Executives.VisionDistance = 7
		cfg.Executives.Count = 5
		cfg.Executives.ScaredTicks = 120
	}
}
