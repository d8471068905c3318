package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/app/leveling"
	"github.com/waybook-app/waybook/internal/daemon"
)

func init() {
	rootCmd.AddCommand(levelCmd)
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show the current level and XP progress",
	RunE:  runLevel,
}

func runLevel(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	state := d.Leveling.State()
	prog := leveling.XPToNextLevel(state.XP)

	fmt.Printf("Level %d (%d XP)\n", prog.CurrentLevel, state.XP)
	if prog.Remaining > 0 {
		span := prog.NextLevelXP - prog.CurrentLevelXP
		into := state.XP - prog.CurrentLevelXP
		fmt.Printf("%s %d/%d XP to level %d\n",
			progressBar(into, span, 30), into, span, prog.CurrentLevel+1)
	} else {
		fmt.Println("Max level reached.")
	}

	if p := d.Leveling.PendingLevelup(); p != nil {
		fmt.Printf("Unseen level-up: reached level %d\n", p.Level)
	}
	return nil
}

// progressBar renders a fixed-width ASCII bar.
func progressBar(done, total int64, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat("=", width) + "]"
	}
	filled := int(done * int64(width) / total)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
