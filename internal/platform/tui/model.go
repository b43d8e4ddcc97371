package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spaceship/internal/config"
	"github.com/vovakirdan/spaceship/internal/core"
	"github.com/vovakirdan/spaceship/internal/games/spaceship"
)

// Model is the Bubble Tea model driving a spaceship game.
type Model struct {
	game      *spaceship.Game
	screen    *core.Screen
	keys      *KeyMapper
	config    core.RuntimeConfig
	canvas    config.CanvasConfig
	logger    *log.Logger
	lastFrame time.Time
	running   bool // a frame command is in flight
	quitting  bool
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game *spaceship.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	canvas := game.Config().Canvas
	return Model{
		game:   game,
		screen: core.NewScreen(canvas.Width, canvas.Height),
		keys:   NewKeyMapper(),
		config: cfg,
		canvas: canvas,
		logger: logger,
		now:    time.Now,
	}
}

// Init starts on the home screen, which waits for input, so no frames are
// scheduled yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	before := m.game.Status()
	couldTick := m.game.CanTick()
	m.game.Handle(action)

	if m.game.Quitting() {
		m.quitting = true
		m.logger.Info("quit", "status", m.game.Status())
		return m, tea.Quit
	}

	if after := m.game.Status(); after != before {
		m.logTransition(before, after)
	}

	if !couldTick && m.game.CanTick() {
		// Time spent waiting for input is not game time.
		m.lastFrame = m.now()
	}
	return m.schedule()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	before := m.game.Status()
	wasIncompatible := m.game.Incompatible()
	m.game.HandleResize(msg.Width, msg.Height)

	if after := m.game.Status(); after != before {
		m.logTransition(before, after)
	}
	switch {
	case m.game.Incompatible() && !wasIncompatible:
		m.logger.Warn("terminal too small for canvas",
			"term", fmt.Sprintf("%dx%d", msg.Width, msg.Height),
			"canvas", fmt.Sprintf("%dx%d", m.canvas.Width, m.canvas.Height))
	case !m.game.Incompatible() && wasIncompatible:
		m.logger.Info("terminal fits canvas again",
			"term", fmt.Sprintf("%dx%d", msg.Width, msg.Height))
	}
	return m, nil
}

// handleFrame feeds elapsed wall-clock time into the game.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	if !m.game.CanTick() {
		// Stop polling; the next key that resumes the game restarts frames.
		m.running = false
		return m, nil
	}

	dt := t.Sub(m.lastFrame)
	if dt < 0 {
		dt = 0
	}
	m.lastFrame = t

	if m.game.Advance(dt) && m.game.Status() == spaceship.StatusGameOver {
		stats := m.game.Stats()
		m.logger.Info("game over",
			"score", stats.Score,
			"rocks", stats.RocksDodged,
			"time", stats.TimePlayed,
			"max_speed", stats.MaxLevel)
		m.running = false
		return m, nil
	}

	return m, frameCmd(m.config.TickRate)
}

// schedule starts the frame loop if the game can tick and no frame is pending.
func (m Model) schedule() (tea.Model, tea.Cmd) {
	if !m.game.CanTick() || m.running {
		return m, nil
	}
	m.running = true
	return m, frameCmd(m.config.TickRate)
}

func (m Model) logTransition(from, to spaceship.Status) {
	switch to {
	case spaceship.StatusPlaying:
		if from == spaceship.StatusPaused {
			m.logger.Debug("resumed")
			return
		}
		m.logger.Info("game started",
			"mode", m.game.Config().Difficulty.Mode,
			"speed", m.game.Stats().ScrollSpeed)
	case spaceship.StatusPaused:
		m.logger.Debug("paused", "score", m.game.Stats().Score)
	default:
		m.logger.Debug("status", "from", from, "to", to)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".spaceship", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("spaceship_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.NewStyle().
		MarginTop(m.canvas.BeginY).
		MarginLeft(m.canvas.BeginX).
		Render(RenderScreen(m.screen))
}

// Game returns the driven game.
func (m Model) Game() *spaceship.Game {
	return m.game
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits.
func Run(game *spaceship.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}
	return nil
}
