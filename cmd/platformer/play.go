package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLevel      string
	flagPick       bool
	flagWatch      bool
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the levels in order",
	Long: `Start playing from the first level, or from the one given by --level.

Controls:
  Left/Right, A/D  - Run
  Down/S           - Stop running
  Space/Up/W       - Jump (again in the air for a double jump)
  X/J              - Attack
  P/Esc            - Pause
  R                - Restart the level (or the run, after winning)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Boars notice you later and charge slower
  normal  - Tuning as configured
  hard    - Boars notice you sooner and charge further

Examples:
  platformer play
  platformer play --level 02-caves
  platformer play --pick --theme mono
  platformer play --difficulty hard
  platformer play --levels ./levels --watch --log-file platformer.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "ID of the level to start at")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the start level from a menu")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Menu theme: default, mono")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = play(logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(logger *log.Logger) error {
	tuning, source, err := config.LoadPlatformer(flagConfig, logger)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&tuning, preset)
	logger.Info("tuning loaded", "source", source, "difficulty", preset)

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	if flagWatch && flagLevelsDir == "" {
		return errors.New("--watch needs --levels")
	}
	loadLevels := level.Builtin
	if flagLevelsDir != "" {
		loadLevels = level.NewLoader(flagLevelsDir).LoadAll
	}
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return errors.New("no levels found")
	}
	logger.Info("levels loaded", "count", len(levels))

	// Get terminal size early for the level picker
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	start := 0
	if flagLevel != "" {
		if start = level.IndexOf(levels, flagLevel); start < 0 {
			return fmt.Errorf("unknown level %q; run 'platformer levels' to list them", flagLevel)
		}
	}
	if flagPick {
		sel, err := tui.RunLevelSelector(levels, cfg, theme)
		if err != nil {
			return err
		}
		if sel == nil {
			return nil
		}
		start = sel.Level
	}

	game := platformer.New(levels, tuning, sprite.DefaultAtlas(), logger)
	game.SetStartLevel(start)

	opts := tui.Options{
		HoldTicks: tuning.Input.HoldTicks,
		Logger:    logger,
	}
	if flagWatch {
		watcher, err := level.NewWatcher(flagLevelsDir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", flagLevelsDir, err)
		}
		defer watcher.Close()
		opts.Watcher = watcher
		opts.Reload = loadLevels
		logger.Info("watching levels", "dir", flagLevelsDir)
	}

	return tui.Run(game, cfg, opts)
}
