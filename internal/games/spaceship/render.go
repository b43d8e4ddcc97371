package spaceship

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/spaceship/internal/config"
	"github.com/vovakirdan/spaceship/internal/core"
)

// Status bar and screen texts.
const (
	menuText    = " (P)ause | (Q)uit "
	pausedText  = "Game paused! (Press <P> to continue)"
	startText   = "Press space-bar or <N> to start a new game!"
	moveText    = "Use <LEFT> or <RIGHT> keys to move either sides."
	accelText   = "Use <UP> key to accelerate."
	statsFormat = " Distance: %-4d | Speed: %-1d | Rocks: %-4d"
)

// Render draws the current game state into dst. It only reads the game.
// dst is expected to be the size of the configured canvas.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.incompatible {
		dst.DrawStyledText(1, 1, g.note, core.StyleBlink)
		return
	}

	switch g.status {
	case StatusPlaying:
		g.drawField(dst)
		g.drawStatusBar(dst)
	case StatusPaused:
		g.drawCentered(dst, pausedText, 0, core.StyleNormal)
	case StatusHome, StatusGameOver:
		g.drawCentered(dst, GameName+"!", -5, core.StyleStandout)
		g.drawCentered(dst, startText, -2, core.StyleNormal)
		g.drawCentered(dst, moveText, 0, core.StyleNormal)
		if g.policy.Progresses() {
			g.drawCentered(dst, accelText, 1, core.StyleNormal)
		}
	}

	g.drawNote(dst)

	if g.border > 0 {
		dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))
	}
}

// drawField draws the rows, newest at the top, and the ship on the bottom row.
func (g *Game) drawField(dst *core.Screen) {
	for n := 0; n < g.lines && n < g.grid.Len(); n++ {
		row := g.grid.At(g.lines - 1 - n)
		for x, c := range row {
			if c == Rock {
				dst.Set(g.border+x, n, RockChar)
			}
		}
	}
	dst.SetStyled(g.border+g.player, g.lines-1, ShipChar, core.StyleBold)
}

// drawStatusBar draws the key hints and the score on the row below the field.
func (g *Game) drawStatusBar(dst *core.Screen) {
	stats := fmt.Sprintf(statsFormat, g.stats.Score, config.SpeedLevel(g.stats.ScrollSpeed), g.stats.RocksDodged)

	pad := g.width - len(menuText) - len(stats)
	if pad < 0 {
		pad = 0
	}
	dst.DrawStyledText(g.border, g.lines, menuText+strings.Repeat(" ", pad), core.StyleReverse)
	dst.DrawStyledText(g.border+len(menuText)+pad, g.lines, stats, core.StyleBold)
}

// drawNote draws the note bottom-up, its last line on the status bar row.
func (g *Game) drawNote(dst *core.Screen) {
	if g.note == "" {
		return
	}
	lines := strings.Split(g.note, "\n")
	for i := range lines {
		text := lines[len(lines)-1-i]
		g.drawText(dst, text, g.lines-i, core.StyleBlink)
	}
}

// drawCentered draws text centered in the playfield, yOffset rows from the middle.
func (g *Game) drawCentered(dst *core.Screen, text string, yOffset int, style core.Style) {
	g.drawText(dst, text, g.lines/2+yOffset, style)
}

func (g *Game) drawText(dst *core.Screen, text string, y int, style core.Style) {
	x := g.border + g.width/2 - utf8.RuneCountInString(text)/2
	dst.DrawStyledText(x, y, text, style)
}
