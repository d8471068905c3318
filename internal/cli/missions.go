package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/daemon"
)

func init() {
	missionsCmd.AddCommand(missionsCompleteCmd)
	rootCmd.AddCommand(missionsCmd)
}

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List missions and their progress",
	RunE:  runMissions,
}

var missionsCompleteCmd = &cobra.Command{
	Use:   "complete MISSION",
	Short: "Record progress on a one-off mission (e.g. share_app)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionsComplete,
}

func runMissions(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	missions := d.Leveling.Missions()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMISSION\tPROGRESS\tREWARD")
	for _, m := range missions {
		status := fmt.Sprintf("%d/%d", m.Progress, m.MaxProgress)
		if m.Progress >= m.MaxProgress {
			status = "done"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d XP\n", m.ID, m.Title, status, m.RewardXP)
	}
	return w.Flush()
}

func runMissionsComplete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	id := args[0]
	missions := d.Leveling.ProgressMission(id, 1)
	if missions == nil {
		return fmt.Errorf("unknown mission %q", id)
	}

	for _, m := range missions {
		if m.ID == id {
			fmt.Printf("%s: %d/%d\n", m.Title, m.Progress, m.MaxProgress)
			if m.Progress >= m.MaxProgress {
				fmt.Printf("Completed! +%d XP\n", m.RewardXP)
			}
		}
	}
	return nil
}
