package spaceship

import (
	"fmt"
	"strings"
)

// summary composes the game over note, one line per statement.
func (g *Game) summary() string {
	lines := []string{
		"Game over!",
		fmt.Sprintf("WoW! You dodged a total of %d space rocks,", g.stats.RocksDodged),
		fmt.Sprintf("space-traveled a distance of %d rows", g.stats.Score),
		fmt.Sprintf("in %.2f space-seconds (ss)", g.stats.TimePlayed.Seconds()),
		fmt.Sprintf("at a maximum speed of %d rows/ss!", g.stats.MaxLevel),
	}
	return strings.Join(lines, "\n")
}
