package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `Shows the levels in play order.

Examples:
  platformer levels
  platformer levels --levels ./levels
  platformer levels check ./levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a directory of level files",
	Long: `Loads every level file under a directory and reports the first error.
Exits non-zero when any file fails to load.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	levelsCmd.AddCommand(checkCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	var (
		levels []*level.Level
		err    error
	)
	if flagLevelsDir != "" {
		levels, err = level.NewLoader(flagLevelsDir).LoadAll()
	} else {
		levels, err = level.Builtin()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels found.")
		return
	}
	printLevels(levels)

	fmt.Println()
	fmt.Println("Run 'platformer play --level <id>' to start at a level.")
}

func runCheck(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	levels, err := level.NewLoader(args[0]).LoadAll()
	if err != nil {
		logger.Error("level check failed", "dir", args[0], "error", err)
		closeLog()
		os.Exit(1)
	}

	for _, l := range levels {
		if n := len(l.Spawns) - len(l.SpawnsOf(level.EnemyBoar)); n > 0 {
			logger.Warn("level has enemies that are not spawned", "id", l.ID, "count", n)
		}
	}
	printLevels(levels)
	fmt.Printf("\n%d level(s) OK\n", len(levels))
}

func printLevels(levels []*level.Level) {
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-20s  %7s  %5s  %s\n", maxIDLen, "ID", "Name", "Size", "Boars", "Source")
	fmt.Printf("  %-*s  %-20s  %7s  %5s  %s\n", maxIDLen, "--", "----", "----", "-----", "------")
	for _, l := range levels {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-20s  %7s  %5d  %s\n", maxIDLen, l.ID, l.Name, size, len(l.SpawnsOf(level.EnemyBoar)), l.Source)
	}
}
