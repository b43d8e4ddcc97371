// Package spaceship implements The Spaceship Game: a ship at the bottom of a
// fixed-size grid dodges rocks scrolling down towards it.
//
// The package holds pure game logic and rendering into a core.Screen; the
// platform layer owns the terminal, the clock and key mapping.
package spaceship

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spaceship/internal/config"
	"github.com/vovakirdan/spaceship/internal/core"
)

// GameName is the title shown on the home screen and in the farewell message.
const GameName = "The Spaceship Game"

// Visual characters for rendering
const (
	ShipChar = 'Y'
	RockChar = '▓'
)

// Transient notes shown at the bottom of the canvas.
const (
	noteIncompatible = "Term dim incompatible"
	noteResume       = "Press (P) to resume"
)

// gustChance is the one-in-N chance of a gust per row in windy mode.
const gustChance = 4

// Status is the screen the game is on. Exactly one is active at a time.
type Status int

const (
	StatusHome Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusHome:
		return "Home"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Stats holds the score counters of the current game.
type Stats struct {
	Score       int           // Rows survived
	RocksDodged int           // Rocks that passed the ship
	TimePlayed  time.Duration // Sum of scroll intervals survived
	ScrollSpeed time.Duration // Time between two rows
	MaxLevel    int           // Highest speed level reached
}

// Game owns all mutable state of a spaceship session.
type Game struct {
	cfg    config.GameConfig
	policy config.SpeedPolicy
	rng    *rand.Rand
	rocks  *RockGenerator
	grid   *Grid

	lines  int // Playfield rows, excluding the status bar
	width  int // Playfield columns inside the border
	border int

	status       Status
	player       int
	stats        Stats
	note         string
	stashedNote  string // Note hidden while the terminal is incompatible
	incompatible bool
	quit         bool
	elapsed      time.Duration // Time accumulated towards the next tick
	wind         int           // Windy mode gust direction, -1 or 1
}

// New creates a game on the home screen.
// Out-of-range gameplay settings fall back to defaults.
func New(cfg config.GameConfig, seed int64) *Game {
	cfg, _ = config.Normalize(cfg)

	g := &Game{
		cfg:    cfg,
		policy: config.NewSpeedPolicy(cfg.Difficulty),
		rng:    rand.New(rand.NewSource(seed)),
		lines:  cfg.Canvas.Lines(),
		width:  cfg.Canvas.PlayWidth(),
		border: cfg.Canvas.BorderWidth(),
	}
	g.rocks = NewRockGenerator(g.rng, g.width, cfg.Rocks.Density)
	g.grid = NewGrid(g.lines, g.width)
	g.Reset()
	g.status = StatusHome
	return g
}

// Reset clears the score, centers the ship and refills the grid with empty
// rows. The status is left unchanged.
func (g *Game) Reset() {
	g.player = g.width / 2
	g.stats = Stats{ScrollSpeed: g.policy.Initial()}
	g.stats.MaxLevel = config.SpeedLevel(g.stats.ScrollSpeed)
	g.note = ""
	g.stashedNote = ""
	g.elapsed = 0
	g.wind = g.rollWind()
	g.grid.Fill()
}

// Tick advances the game by one row: a new row of rocks enters at the top,
// the oldest leaves at the bottom, and the row now level with the ship is
// checked for a hit. It does nothing unless a game is being played.
func (g *Game) Tick() {
	if g.status != StatusPlaying {
		return
	}

	row, count := g.rocks.NewRow()
	g.grid.Push(row, count)

	if g.grid.Front()[g.player] == Rock {
		g.status = StatusGameOver
		g.note = g.summary()
		return
	}

	g.stats.Score++
	g.stats.RocksDodged += g.grid.Count(0)
	g.stats.TimePlayed += g.stats.ScrollSpeed

	next := g.policy.Next(g.stats.ScrollSpeed, g.stats.Score, g.lines)
	if next != g.stats.ScrollSpeed {
		g.setSpeed(next)
		g.wind = g.rollWind()
	}

	if g.cfg.Difficulty.Mode == config.ModeWindy && g.rng.Intn(gustChance) == 0 {
		g.player = core.Clamp(g.player+g.wind, 0, g.width-1)
	}
}

// Advance feeds wall-clock time into the game and ticks once the scroll
// interval has elapsed. Time only accumulates while ticking is allowed, so a
// paused game keeps its score, time and speed. Returns true if a tick ran.
func (g *Game) Advance(dt time.Duration) bool {
	if !g.CanTick() {
		return false
	}
	g.elapsed += dt
	if g.elapsed < g.stats.ScrollSpeed {
		return false
	}
	g.elapsed = 0
	g.Tick()
	return true
}

// CanTick returns whether time currently advances the game.
func (g *Game) CanTick() bool {
	return g.status == StatusPlaying && !g.incompatible && !g.quit
}

// MovePlayer moves the ship dir columns, clamped to the playfield.
func (g *Game) MovePlayer(dir int) {
	if g.status != StatusPlaying {
		return
	}
	g.player = core.Clamp(g.player+dir, 0, g.width-1)
}

// Accelerate speeds the scroll up by one step. Static games are unaffected.
func (g *Game) Accelerate() {
	if g.status != StatusPlaying {
		return
	}
	g.setSpeed(g.policy.Accelerate(g.stats.ScrollSpeed))
}

// TogglePause switches between playing and paused. It has no effect on the
// home and game over screens, and a game cannot resume while the terminal is
// too small for the canvas.
func (g *Game) TogglePause() {
	switch g.status {
	case StatusPlaying:
		g.status = StatusPaused
	case StatusPaused:
		if g.incompatible {
			return
		}
		g.status = StatusPlaying
		g.note = ""
	}
}

// StartNewGame resets the game and starts playing. It is only valid from the
// home and game over screens.
func (g *Game) StartNewGame() {
	if g.status != StatusHome && g.status != StatusGameOver {
		return
	}
	if g.incompatible {
		return
	}
	g.Reset()
	g.status = StatusPlaying
}

// Quit marks the session as finished; the driver stops its loop.
func (g *Game) Quit() {
	g.quit = true
}

// HandleResize re-validates the canvas against a new terminal size.
// A running game is paused; while the canvas does not fit, rendering shows
// only a warning and the game cannot tick.
func (g *Game) HandleResize(termW, termH int) {
	if g.status == StatusPlaying {
		g.status = StatusPaused
	}

	if !config.Fits(g.cfg, termW, termH) {
		if !g.incompatible {
			g.stashedNote = g.note
		}
		g.incompatible = true
		g.note = noteIncompatible
		return
	}

	wasIncompatible := g.incompatible
	g.incompatible = false
	switch {
	case g.status == StatusPaused:
		g.note = noteResume
	case wasIncompatible:
		g.note = g.stashedNote
	}
	g.stashedNote = ""
}

// Handle applies a platform action to the game.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.MovePlayer(-1)
	case core.ActionRight:
		g.MovePlayer(1)
	case core.ActionAccelerate:
		g.Accelerate()
	case core.ActionPause:
		g.TogglePause()
	case core.ActionNewGame:
		g.StartNewGame()
	case core.ActionQuit:
		g.Quit()
	}
}

func (g *Game) setSpeed(speed time.Duration) {
	g.stats.ScrollSpeed = speed
	g.stats.MaxLevel = core.Max(g.stats.MaxLevel, config.SpeedLevel(speed))
}

func (g *Game) rollWind() int {
	if g.cfg.Difficulty.Mode != config.ModeWindy {
		return 0
	}
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Status returns the active screen.
func (g *Game) Status() Status {
	return g.status
}

// Stats returns the current score counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Player returns the ship's column.
func (g *Game) Player() int {
	return g.player
}

// Note returns the message overlaid at the bottom of the canvas.
func (g *Game) Note() string {
	return g.note
}

// Grid returns the playfield rows.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Lines returns the number of playfield rows.
func (g *Game) Lines() int {
	return g.lines
}

// Width returns the number of playfield columns.
func (g *Game) Width() int {
	return g.width
}

// Config returns the session configuration after normalization.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Incompatible returns whether the terminal is too small for the canvas.
func (g *Game) Incompatible() bool {
	return g.incompatible
}

// Quitting returns whether the session should end.
func (g *Game) Quitting() bool {
	return g.quit
}
