package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/daemon"
)

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all XP and mission progress (streak and trips survive)",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		fmt.Print("This clears XP, level-ups, and mission progress. Continue? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Leveling.Reset(); err != nil {
		return err
	}
	fmt.Println("Progression reset.")
	return nil
}
