// platformer is a side-scrolling tile platformer played in the terminal.
//
// Usage:
//
//	platformer play               - Play the built-in levels
//	platformer play --pick        - Choose a level first
//	platformer levels             - List levels
//	platformer levels check <dir> - Validate a directory of level files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file; play discards logs without it
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile platformer for your terminal",
	Long: `Platformer is a side-scrolling tile platformer played in the terminal.
Run and jump through each level, cut down the boars that charge you and reach
the flag to move on.

Available commands:
  play     - Play the levels in order
  levels   - List or validate level files

Examples:
  platformer play
  platformer play --pick
  platformer play --levels ./levels --watch
  platformer levels check ./levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the logger for a command. Without --log-file it writes to
// fallback, which play sets to io.Discard so log lines stay off the game screen.
// The returned close function must be called before exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, closeFn, nil
}
