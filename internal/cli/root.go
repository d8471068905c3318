// Package cli implements the Waybook command-line interface using Cobra.
// Each subcommand inspects or drives the leveling engine directly against
// the local store, without requiring a running daemon.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "waybook",
	Short: "Waybook — travel journal companion",
	Long: `Waybook keeps your travel journal's progression engine: XP, levels,
missions over your trip records, and the daily open streak.

Data lives under ~/.waybook (override with WAYBOOK_HOME).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
