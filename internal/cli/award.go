package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/app/leveling"
	"github.com/waybook-app/waybook/internal/daemon"
)

func init() {
	awardCmd.AddCommand(awardTripCmd)
	awardCmd.AddCommand(awardPhotosCmd)
	rootCmd.AddCommand(awardCmd)
}

var awardCmd = &cobra.Command{
	Use:   "award",
	Short: "Grant fixed XP awards",
}

var awardTripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Grant the trip-created award",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		d.Leveling.AwardTripCreated()
		fmt.Printf("+%d XP (now %d)\n", leveling.XPPerTripCreated, d.Leveling.State().XP)
		return nil
	},
}

var awardPhotosCmd = &cobra.Command{
	Use:   "photos COUNT",
	Short: "Grant 1 XP per newly added photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q", args[0])
		}

		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		d.Leveling.AwardPhotosAdded(count)
		fmt.Printf("XP now %d\n", d.Leveling.State().XP)
		return nil
	},
}
