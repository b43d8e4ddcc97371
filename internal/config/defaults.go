package config

import (
	_ "embed"
)

//go:embed defaults/spaceship.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Canvas: CanvasConfig{
			Height: 24,
			Width:  64,
		},
		Rocks: RocksConfig{
			Density: DefaultDensity,
		},
		Difficulty: DifficultyConfig{
			Mode:  ModeAuto,
			Speed: DefaultSpeedLevel,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
