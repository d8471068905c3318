package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics derived from trip records",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	stats := d.Leveling.Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Trips\t%d\n", stats.TripCount)
	fmt.Fprintf(w, "Photos\t%d\n", stats.PhotoCount)
	fmt.Fprintf(w, "Captions\t%d\n", stats.CaptionCount)
	fmt.Fprintf(w, "Countries\t%d\n", stats.CountryCount)
	fmt.Fprintf(w, "Streak\t%d\n", stats.CurrentStreak)
	return w.Flush()
}
