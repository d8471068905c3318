package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/waybook-app/waybook/internal/daemon"
	"github.com/waybook-app/waybook/internal/domain"
)

func init() {
	tripAddCmd.Flags().StringVar(&tripCountry, "country", "", "Country the trip visits")
	tripCmd.AddCommand(tripAddCmd)
	tripCmd.AddCommand(tripListCmd)
	rootCmd.AddCommand(tripCmd)
}

var tripCountry string

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage journal trip records",
}

var tripAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Create a trip record and grant the trip-created award",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripAdd,
}

var tripListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored trip records",
	RunE:    runTripList,
}

func runTripAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	trip := domain.Trip{
		ID:      uuid.NewString(),
		Title:   args[0],
		Country: tripCountry,
		Days: []domain.TripDay{
			{Date: time.Now().Format("2006-01-02")},
		},
	}

	raw, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("encode trip: %w", err)
	}
	if err := d.DB.Set(domain.TripKey(trip.ID), string(raw)); err != nil {
		return fmt.Errorf("store trip: %w", err)
	}

	d.Leveling.AwardTripCreated()
	fmt.Printf("Created trip %s (%s)\n", trip.Title, trip.ID)
	return nil
}

func runTripList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	keys, err := d.DB.Keys()
	if err != nil {
		return err
	}

	var tripKeys []string
	for _, k := range keys {
		if strings.HasPrefix(k, domain.TripKeyPrefix) {
			tripKeys = append(tripKeys, k)
		}
	}
	if len(tripKeys) == 0 {
		fmt.Println("No trips yet. Run 'waybook trip add <title>' to start one.")
		return nil
	}

	records, err := d.DB.GetMulti(tripKeys)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOUNTRY\tDAYS")
	for _, k := range tripKeys {
		var trip domain.Trip
		if err := json.Unmarshal([]byte(records[k]), &trip); err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", trip.ID, trip.Title, trip.Country, len(trip.Days))
	}
	return w.Flush()
}
