package config

import "time"

// Scroll speed bounds, in time between two rows.
const (
	DefaultScrollSpeed = 1000 * time.Millisecond
	MinScrollSpeed     = 200 * time.Millisecond
	ScrollSpeedStep    = 200 * time.Millisecond
)

// SpeedPolicy decides the scroll speed of a game: its initial value and how it
// evolves as the score grows. Smaller durations mean a faster, harder game.
type SpeedPolicy struct {
	Mode  Mode
	Level int           // Static mode level, 1 to 5
	Step  time.Duration // Decrease applied at each difficulty increase
	Floor time.Duration // Fastest allowed speed
}

// NewSpeedPolicy creates the policy for a difficulty configuration.
func NewSpeedPolicy(cfg DifficultyConfig) SpeedPolicy {
	return SpeedPolicy{
		Mode:  cfg.Mode,
		Level: cfg.Speed,
		Step:  ScrollSpeedStep,
		Floor: MinScrollSpeed,
	}
}

// Initial returns the scroll speed at the start of a game.
// Static mode uses 1200ms - level*200ms; other modes start at the default.
func (p SpeedPolicy) Initial() time.Duration {
	if p.Mode == ModeStatic && p.Level >= MinSpeedLevel && p.Level <= MaxSpeedLevel {
		return 1200*time.Millisecond - time.Duration(p.Level)*200*time.Millisecond
	}
	return DefaultScrollSpeed
}

// Progresses returns whether the speed changes during a game.
func (p SpeedPolicy) Progresses() bool {
	return p.Mode != ModeStatic
}

// Next returns the scroll speed after a row was survived.
// The speed steps up every time score reaches a multiple of lines,
// that is once per screen height survived.
func (p SpeedPolicy) Next(current time.Duration, score, lines int) time.Duration {
	if !p.Progresses() || lines <= 0 || score <= 0 || score%lines != 0 {
		return current
	}
	return p.Accelerate(current)
}

// Accelerate returns the speed one step faster, never below the floor.
// Static games keep their speed.
func (p SpeedPolicy) Accelerate(current time.Duration) time.Duration {
	if !p.Progresses() {
		return current
	}
	next := current - p.Step
	if next < p.Floor {
		next = p.Floor
	}
	return next
}

// SpeedLevel converts a scroll speed into the 1-5 level shown to the player.
func SpeedLevel(speed time.Duration) int {
	return 6 - int(speed/(200*time.Millisecond))
}
