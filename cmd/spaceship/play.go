package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spaceship/internal/config"
	"github.com/vovakirdan/spaceship/internal/core"
	"github.com/vovakirdan/spaceship/internal/games/spaceship"
	"github.com/vovakirdan/spaceship/internal/platform/tui"
)

const farewell = "Thank you for playing " + spaceship.GameName + "!"

func runPlay(cmd *cobra.Command, _ []string) (err error) {
	// Warnings before the session go straight to the terminal
	warnLog := newLogger(os.Stderr, flagDebug)

	cfg, err := loadGameConfig(cmd, warnLog)
	if err != nil {
		return err
	}

	// Get terminal size for validation; 0 skips the fit check
	termW, termH := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		termW, termH = w, h
	}

	if err := config.Validate(cfg, termW, termH); err != nil {
		var verr *config.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		// A misconfigured canvas is not a crash.
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Cannot start: the canvas configuration is invalid.")
		for _, v := range verr.Violations {
			fmt.Fprintf(out, "  - %s\n", v)
		}
		return nil
	}

	sessionLog, closeLog, err := openSessionLog(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:  termW,
		ScreenH:  termH,
		TickRate: flagFPS,
		Seed:     seed,
	}

	defer func() {
		if r := recover(); r != nil {
			sessionLog.Error("panic", "err", r)
			fmt.Fprintf(cmd.ErrOrStderr(), "Unexpected error: %v\n", r)
			err = errReported
		}
		fmt.Fprintln(cmd.OutOrStdout(), farewell)
	}()

	game := spaceship.New(cfg, seed)
	sessionLog.Info("session started",
		"canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		"mode", cfg.Difficulty.Mode,
		"density", cfg.Rocks.Density,
		"seed", seed)

	if err := tui.Run(game, rt, sessionLog); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unexpected error: %v\n", err)
		return errReported
	}
	return nil
}

// loadGameConfig loads the config file, applies explicitly set flags and
// replaces out-of-range gameplay values, logging a warning for each.
func loadGameConfig(cmd *cobra.Command, logger *log.Logger) (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("canvas-height") {
		cfg.Canvas.Height = flagCanvasHeight
	}
	if flags.Changed("canvas-width") {
		cfg.Canvas.Width = flagCanvasWidth
	}
	if flags.Changed("border") {
		cfg.Canvas.Border = flagBorder
	}
	if flags.Changed("begin-y") {
		cfg.Canvas.BeginY = flagBeginY
	}
	if flags.Changed("begin-x") {
		cfg.Canvas.BeginX = flagBeginX
	}
	if flags.Changed("speed") {
		cfg.Difficulty.Speed = flagSpeed
	}
	if flags.Changed("density") {
		cfg.Rocks.Density = flagDensity
	}
	if flags.Changed("mode") {
		cfg.Difficulty.Mode = config.Mode(flagMode)
	}

	cfg, warnings := config.Normalize(cfg)
	for _, w := range warnings {
		logger.Warn(w)
	}
	return cfg, nil
}
