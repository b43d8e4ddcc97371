package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spaceship/internal/config"
	"github.com/vovakirdan/spaceship/internal/core"
	"github.com/vovakirdan/spaceship/internal/games/spaceship"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, cfg config.GameConfig) Model {
	t.Helper()
	game := spaceship.New(cfg, 42)
	m := NewModel(game, core.DefaultConfig(), log.New(io.Discard))
	m.now = func() time.Time { return testEpoch }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func startGame(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, runeKey('n'))
	if m.Game().Status() != spaceship.StatusPlaying {
		t.Fatalf("expected Playing after new game key, got %s", m.Game().Status())
	}
	if cmd == nil {
		t.Fatal("starting a game should schedule a frame")
	}
	return m
}

// clearApproach empties the row that reaches the ship on the next tick.
func clearApproach(m Model) {
	row := m.Game().Grid().At(1)
	for i := range row {
		row[i] = spaceship.Empty
	}
}

func TestInitSchedulesNothing(t *testing.T) {
	m := newTestModel(t, config.DefaultGameConfig())

	if cmd := m.Init(); cmd != nil {
		t.Error("home screen should wait for input without frames")
	}
}

func TestFrameAdvancesGame(t *testing.T) {
	m := startGame(t, newTestModel(t, config.DefaultGameConfig()))
	clearApproach(m)

	// Less than one scroll interval: nothing happens yet.
	m, cmd := update(t, m, FrameMsg(testEpoch.Add(400*time.Millisecond)))
	if cmd == nil {
		t.Fatal("running game should keep polling frames")
	}
	if got := m.Game().Stats().Score; got != 0 {
		t.Fatalf("score after 400ms = %d, expected 0", got)
	}

	m, _ = update(t, m, FrameMsg(testEpoch.Add(time.Second)))
	if got := m.Game().Stats().Score; got != 1 {
		t.Errorf("score after one scroll interval = %d, expected 1", got)
	}
}

func TestPauseStopsFrames(t *testing.T) {
	m := startGame(t, newTestModel(t, config.DefaultGameConfig()))

	m, cmd := update(t, m, runeKey('p'))
	if m.Game().Status() != spaceship.StatusPaused {
		t.Fatalf("expected Paused, got %s", m.Game().Status())
	}
	if cmd != nil {
		t.Error("pausing should not schedule another frame")
	}

	// The frame already in flight arrives and ends the loop.
	m, cmd = update(t, m, FrameMsg(testEpoch.Add(10*time.Second)))
	if cmd != nil {
		t.Error("paused game should stop polling frames")
	}
	if m.running {
		t.Error("frame loop should be marked stopped")
	}
	if got := m.Game().Stats().Score; got != 0 {
		t.Errorf("paused game should not score, got %d", got)
	}

	m, cmd = update(t, m, runeKey('p'))
	if m.Game().Status() != spaceship.StatusPlaying {
		t.Fatalf("expected Playing after resume, got %s", m.Game().Status())
	}
	if cmd == nil {
		t.Error("resuming should restart the frame loop")
	}
}

func TestResumeDiscardsPausedTime(t *testing.T) {
	m := startGame(t, newTestModel(t, config.DefaultGameConfig()))
	m, _ = update(t, m, runeKey('p'))

	// Resume before the pending frame arrives; it must not count the pause.
	later := testEpoch.Add(time.Minute)
	m.now = func() time.Time { return later }
	m, _ = update(t, m, runeKey('p'))
	clearApproach(m)

	m, _ = update(t, m, FrameMsg(later.Add(100*time.Millisecond)))
	if got := m.Game().Stats().Score; got != 0 {
		t.Errorf("time spent paused should not advance the game, score %d", got)
	}
}

func TestResizeTooSmall(t *testing.T) {
	m := startGame(t, newTestModel(t, config.DefaultGameConfig()))

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if cmd != nil {
		t.Error("resize should not schedule frames")
	}
	if !m.Game().Incompatible() {
		t.Fatal("40x10 terminal should not fit a 64x24 canvas")
	}
	if m.Game().Status() != spaceship.StatusPaused {
		t.Errorf("resize should pause a running game, got %s", m.Game().Status())
	}
	if view := m.View(); !strings.Contains(view, "Term dim incompatible") {
		t.Errorf("view should warn about the terminal size:\n%s", view)
	}

	// Resuming is refused until the terminal grows again.
	m, cmd = update(t, m, runeKey('p'))
	if m.Game().Status() != spaceship.StatusPaused || cmd != nil {
		t.Error("game should stay paused while the terminal is too small")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Game().Incompatible() {
		t.Fatal("100x40 terminal should fit")
	}
	if view := m.View(); !strings.Contains(view, "Press (P) to resume") {
		t.Errorf("view should prompt to resume:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, config.DefaultGameConfig())

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
	if !m.Game().Quitting() {
		t.Error("game should be marked as quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewAppliesBeginOffsets(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Canvas.BeginY = 2
	cfg.Canvas.BeginX = 3
	m := newTestModel(t, cfg)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != cfg.Canvas.Height+2 {
		t.Fatalf("view has %d lines, expected %d", len(lines), cfg.Canvas.Height+2)
	}
	// Home title is drawn five rows above the middle of the playfield.
	title := lines[2+cfg.Canvas.Lines()/2-5]
	if !strings.Contains(title, spaceship.GameName) {
		t.Errorf("title row should contain the game name: %q", title)
	}
	if !strings.HasPrefix(title, "   ") {
		t.Errorf("canvas should be shifted right by begin_x: %q", title)
	}
}

func TestScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	m := newTestModel(t, config.DefaultGameConfig())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not schedule commands")
	}

	path := filepath.Join(home, ".spaceship", "screenshots", "spaceship_20240101_120000.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.Contains(string(data), spaceship.GameName) {
		t.Error("screenshot should contain the rendered home screen")
	}
}
