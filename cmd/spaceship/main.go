// spaceship is a terminal arcade game: steer a spaceship through a field of
// falling rocks for as long as you can.
//
// Usage:
//
//	spaceship                - Play with the configured canvas
//	spaceship config         - Print the effective configuration as YAML
//
// Flags:
//
//	--canvas-height <n>     - Canvas rows including the status bar (min 20)
//	--canvas-width <n>      - Canvas columns (min 60)
//	--border                - Draw a frame around the canvas
//	--begin-y, --begin-x    - Canvas offset inside the terminal
//	--speed <1-5>           - Fixed speed level in static mode
//	--density <1-50>        - Rock density in percent of the width
//	--mode <mode>           - auto, static or windy
//	--config <path>         - Path to a YAML config file
//	--seed <value>          - RNG seed for reproducible rock fields
//	--fps <rate>            - Frame polling rate (default: 60)
//	--log-file <path>       - Write session logs to a file
//	--debug                 - Verbose logging
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagFPS     int
	flagLogFile string
	flagDebug   bool

	// Game settings, applied over the config file when set explicitly
	flagCanvasHeight int
	flagCanvasWidth  int
	flagBorder       bool
	flagBeginY       int
	flagBeginX       int
	flagSpeed        int
	flagDensity      int
	flagMode         string
)

// errReported marks failures already shown to the user.
var errReported = errors.New("error already reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceship",
	Short: "The Spaceship Game - dodge the rocks in your terminal",
	Long: `The Spaceship Game puts you in command of a small ship (Y) flying
through a field of rocks. Every row you survive scores a point, and the
field scrolls faster each time you clear a whole screen.

Controls:
  Left/Right (h/l)  - Move
  Up (k)            - Accelerate
  P                 - Pause / resume
  N/Space           - New game
  Q/Ctrl+C          - Quit

Modes:
  auto   - Speed increases every screen survived
  static - Speed fixed by --speed
  windy  - Like auto, with gusts pushing the ship sideways

Examples:
  spaceship
  spaceship --mode static --speed 5
  spaceship --canvas-height 30 --canvas-width 80 --border
  spaceship --config ./my-spaceship.yaml
  spaceship config > ~/.spaceship/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame polling rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.PersistentFlags().IntVar(&flagCanvasHeight, "canvas-height", 0, "Canvas height in rows (min 20)")
	rootCmd.PersistentFlags().IntVar(&flagCanvasWidth, "canvas-width", 0, "Canvas width in columns (min 60)")
	rootCmd.PersistentFlags().BoolVar(&flagBorder, "border", false, "Draw a border around the canvas")
	rootCmd.PersistentFlags().IntVar(&flagBeginY, "begin-y", 0, "Canvas top offset")
	rootCmd.PersistentFlags().IntVar(&flagBeginX, "begin-x", 0, "Canvas left offset")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Speed level for static mode (1-5)")
	rootCmd.PersistentFlags().IntVar(&flagDensity, "density", 0, "Rock density in percent (1-50)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Difficulty mode: auto, static, windy")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
