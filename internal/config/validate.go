package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every canvas constraint a configuration violates.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "config: invalid canvas: " + strings.Join(e.Violations, "; ")
}

// Normalize replaces out-of-range gameplay settings with defaults.
// It returns the corrected config and one warning per replaced value.
// Canvas problems are not fixed here; see Validate.
func Normalize(cfg GameConfig) (GameConfig, []string) {
	var warnings []string

	if cfg.Rocks.Density < MinDensity || cfg.Rocks.Density > MaxDensity {
		warnings = append(warnings, fmt.Sprintf("density %d outside [%d, %d], using %d",
			cfg.Rocks.Density, MinDensity, MaxDensity, DefaultDensity))
		cfg.Rocks.Density = DefaultDensity
	}

	if cfg.Difficulty.Speed < MinSpeedLevel || cfg.Difficulty.Speed > MaxSpeedLevel {
		warnings = append(warnings, fmt.Sprintf("speed %d outside [%d, %d], using %d",
			cfg.Difficulty.Speed, MinSpeedLevel, MaxSpeedLevel, DefaultSpeedLevel))
		cfg.Difficulty.Speed = DefaultSpeedLevel
	}

	if _, err := ParseMode(string(cfg.Difficulty.Mode)); err != nil {
		warnings = append(warnings, fmt.Sprintf("unknown mode %q, using %s", cfg.Difficulty.Mode, ModeAuto))
		cfg.Difficulty.Mode = ModeAuto
	}

	return cfg, warnings
}

// Validate checks the canvas against the minimum dimensions.
// When termW and termH are positive the canvas must also fit the terminal.
// Returns nil or a *ValidationError naming every violated constraint.
func Validate(cfg GameConfig, termW, termH int) error {
	var violations []string
	c := cfg.Canvas

	if c.Height < MinHeight {
		violations = append(violations, fmt.Sprintf("canvas height %d is below the minimum of %d", c.Height, MinHeight))
	}
	if c.Width < MinWidth {
		violations = append(violations, fmt.Sprintf("canvas width %d is below the minimum of %d", c.Width, MinWidth))
	}
	if c.BeginY < 0 {
		violations = append(violations, fmt.Sprintf("begin_y %d must not be negative", c.BeginY))
	}
	if c.BeginX < 0 {
		violations = append(violations, fmt.Sprintf("begin_x %d must not be negative", c.BeginX))
	}
	if termH > 0 && c.BeginY+c.Height > termH {
		violations = append(violations, fmt.Sprintf("canvas needs %d rows but the terminal has %d", c.BeginY+c.Height, termH))
	}
	if termW > 0 && c.BeginX+c.Width > termW {
		violations = append(violations, fmt.Sprintf("canvas needs %d columns but the terminal has %d", c.BeginX+c.Width, termW))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Fits reports whether the canvas satisfies the minimums and fits a terminal
// of the given size.
func Fits(cfg GameConfig, termW, termH int) bool {
	return Validate(cfg, termW, termH) == nil
}
