// Package config provides YAML-based game configuration loading, validation
// and the scroll speed policy for the spaceship game.
package config

import "fmt"

// Canvas limits. The status bar needs roughly sixty columns.
const (
	MinHeight = 20
	MinWidth  = 60
)

// Density limits and fallback, in percent of the playfield width.
const (
	MinDensity     = 1
	MaxDensity     = 50
	DefaultDensity = 20
)

// Speed level limits for static mode.
const (
	MinSpeedLevel     = 1
	MaxSpeedLevel     = 5
	DefaultSpeedLevel = 3
)

// Mode selects how difficulty evolves during a game.
type Mode string

const (
	ModeAuto   Mode = "auto"   // Scroll speed increases every screen survived
	ModeStatic Mode = "static" // Scroll speed fixed from the configured level
	ModeWindy  Mode = "windy"  // Like auto, plus wind gusts pushing the ship
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeStatic, ModeWindy:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("config: unknown mode %q (want auto, static or windy)", s)
	}
}

// GameConfig contains all configuration for a spaceship session.
// It is immutable once a session starts.
type GameConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Rocks      RocksConfig      `yaml:"rocks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the game window inside the terminal.
type CanvasConfig struct {
	Height int  `yaml:"height"`
	Width  int  `yaml:"width"`
	Border bool `yaml:"border"`
	BeginY int  `yaml:"begin_y"`
	BeginX int  `yaml:"begin_x"`
}

// RocksConfig defines rock generation parameters.
type RocksConfig struct {
	Density int `yaml:"density"` // Percent of the width eligible for rocks per row
}

// DifficultyConfig defines the difficulty progression.
type DifficultyConfig struct {
	Mode  Mode `yaml:"mode"`
	Speed int  `yaml:"speed"` // Static mode level, 1 (slow) to 5 (fast)
}

// BorderWidth returns 1 when a border is drawn, 0 otherwise.
func (c CanvasConfig) BorderWidth() int {
	if c.Border {
		return 1
	}
	return 0
}

// Lines returns the number of playfield rows, excluding the status bar.
func (c CanvasConfig) Lines() int {
	return c.Height - 1 - c.BorderWidth()
}

// PlayWidth returns the number of playfield columns inside the border.
func (c CanvasConfig) PlayWidth() int {
	return c.Width - 2*c.BorderWidth()
}
