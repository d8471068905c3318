package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/daemon"
)

func init() {
	streakCmd.Flags().BoolVar(&streakTick, "tick", false, "Register an app open for today before printing")
	rootCmd.AddCommand(streakCmd)
}

var streakTick bool

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the daily open streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	streak := d.Leveling.Streak()
	if streakTick {
		streak = d.Leveling.TickStreak(time.Now())
	}

	fmt.Printf("Current streak: %d day(s)\n", streak.Current)
	fmt.Printf("Best streak:    %d day(s)\n", streak.Best)
	if streak.Last != "" {
		fmt.Printf("Last open:      %s\n", streak.Last)
	}
	return nil
}
