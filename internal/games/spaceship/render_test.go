package spaceship

import (
	"strings"
	"testing"

	"github.com/vovakirdan/spaceship/internal/config"
	"github.com/vovakirdan/spaceship/internal/core"
)

func renderGame(g *Game) *core.Screen {
	cfg := g.Config()
	dst := core.NewScreen(cfg.Canvas.Width, cfg.Canvas.Height)
	g.Render(dst)
	return dst
}

func TestRenderHome(t *testing.T) {
	g := New(testConfig(), 1)
	out := renderGame(g).String()

	for _, want := range []string{GameName + "!", startText, moveText, accelText} {
		if !strings.Contains(out, want) {
			t.Errorf("home screen should contain %q", want)
		}
	}
}

func TestRenderHomeStaticHidesAccelerate(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Mode = config.ModeStatic

	out := renderGame(New(cfg, 1)).String()
	if strings.Contains(out, accelText) {
		t.Error("static mode cannot accelerate, the hint should be hidden")
	}
}

func TestRenderTitleIsStandout(t *testing.T) {
	g := New(testConfig(), 1)
	dst := renderGame(g)

	y := g.Lines()/2 - 5
	row := dst.Row(y)
	x := strings.Index(row, "T")
	if x < 0 {
		t.Fatalf("title not found on row %d: %q", y, row)
	}
	if dst.GetCell(x, y).Style != core.StyleStandout {
		t.Errorf("title style = %v, expected standout", dst.GetCell(x, y).Style)
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newPlayingGame(t, testConfig(), 1)
	g.player = 10
	g.grid.At(g.Lines() - 1)[3] = Rock // newest row
	g.grid.At(0)[20] = Rock            // front row, level with the ship

	dst := renderGame(g)
	shipRow := g.Lines() - 1

	if dst.Get(10, shipRow) != ShipChar {
		t.Errorf("ship should be at (10, %d), row = %q", shipRow, dst.Row(shipRow))
	}
	if dst.GetCell(10, shipRow).Style != core.StyleBold {
		t.Error("ship should be bold")
	}
	if dst.Get(20, shipRow) != RockChar {
		t.Error("front row should be drawn on the ship's row")
	}
	if dst.Get(3, 0) != RockChar {
		t.Error("newest row should be drawn at the top")
	}

	bar := dst.Row(g.Lines())
	if !strings.HasPrefix(bar, menuText) {
		t.Errorf("status bar should start with the key hints, got %q", bar)
	}
	if !strings.Contains(bar, "Distance: 0") || !strings.Contains(bar, "Speed: 1") || !strings.Contains(bar, "Rocks: 0") {
		t.Errorf("status bar should show the stats, got %q", bar)
	}
	if dst.GetCell(0, g.Lines()).Style != core.StyleReverse {
		t.Error("key hints should be reversed")
	}
	if dst.GetCell(g.Width()-1, g.Lines()).Style != core.StyleBold {
		t.Error("stats should be bold and right aligned")
	}
}

func TestRenderPaused(t *testing.T) {
	g := newPlayingGame(t, testConfig(), 1)
	g.TogglePause()

	out := renderGame(g).String()
	if !strings.Contains(out, pausedText) {
		t.Error("paused screen should show the pause message")
	}
	if strings.Contains(out, string(ShipChar)) {
		t.Error("paused screen should not show the field")
	}
}

func TestRenderIncompatibleShowsOnlyNote(t *testing.T) {
	g := newPlayingGame(t, testConfig(), 1)
	g.HandleResize(20, 5)

	dst := renderGame(g)
	if !strings.HasPrefix(dst.Row(1), " "+noteIncompatible) {
		t.Errorf("row 1 should hold the note, got %q", dst.Row(1))
	}
	if dst.GetCell(1, 1).Style != core.StyleBlink {
		t.Error("the note should blink")
	}
	if strings.Contains(dst.String(), pausedText) {
		t.Error("normal rendering should be suppressed")
	}
}

func TestRenderGameOverNoteBottomUp(t *testing.T) {
	g := newPlayingGame(t, testConfig(), 1)
	g.grid.At(1)[g.Player()] = Rock
	g.Tick()

	dst := renderGame(g)
	lines := strings.Split(g.Note(), "\n")

	last := strings.TrimSpace(dst.Row(g.Lines()))
	if last != lines[len(lines)-1] {
		t.Errorf("last note line should be on row %d, got %q", g.Lines(), last)
	}
	first := strings.TrimSpace(dst.Row(g.Lines() - len(lines) + 1))
	if first != lines[0] {
		t.Errorf("first note line misplaced, got %q", first)
	}
	if !strings.Contains(dst.String(), GameName) {
		t.Error("game over returns to the home screen")
	}
}

func TestRenderBorder(t *testing.T) {
	cfg := testConfig()
	cfg.Canvas.Border = true
	g := New(cfg, 1)

	dst := renderGame(g)
	if dst.Get(0, 0) != '┌' || dst.Get(cfg.Canvas.Width-1, cfg.Canvas.Height-1) != '┘' {
		t.Error("border corners missing")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newPlayingGame(t, testConfig(), 1)
	before := g.Stats()
	status := g.Status()

	renderGame(g)
	renderGame(g)

	if g.Stats() != before || g.Status() != status {
		t.Error("Render must only read the game")
	}
}
