package glucolog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/journal"
	"github.com/varsha/glucolog/internal/model"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log and manage sleep entries",
}

var (
	sleepBed       string
	sleepWake      string
	sleepQuality   int
	sleepBGBedtime int
	sleepBGWaking  int
	sleepNotes     string
	sleepLast      int
)

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a sleep session",
	RunE: func(cmd *cobra.Command, args []string) error {
		bed, err := parseDateTime("--bed", sleepBed)
		if err != nil {
			return err
		}
		wake, err := parseDateTime("--wake", sleepWake)
		if err != nil {
			return err
		}
		if err := validateQuality(sleepQuality); err != nil {
			return err
		}
		entry := model.SleepEntry{
			ID:                  model.NewID(),
			Date:                wake,
			BedTime:             bed,
			WakeTime:            wake,
			Quality:             sleepQuality,
			BloodGlucoseBedtime: optionalIntFlag(cmd, "bg-bedtime", sleepBGBedtime),
			BloodGlucoseWaking:  optionalIntFlag(cmd, "bg-waking", sleepBGWaking),
			Notes:               sleepNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadSleepLog(sqldb)
			if err != nil {
				return err
			}
			log.Insert(entry)
			if err := journal.InsertSleep(sqldb, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged sleep %s (%.1f hours, quality %d/5)\n", entry.ID, entry.Hours(), entry.Quality)
			return nil
		})
	},
}

var sleepListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sleep entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadSleepLog(sqldb)
			if err != nil {
				return err
			}
			entries := log.All()
			if sleepLast > 0 && sleepLast < len(entries) {
				entries = entries[:sleepLast]
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sleep logged.")
				return nil
			}
			for _, e := range entries {
				notes := ""
				if e.Notes != "" {
					notes = "  " + e.Notes
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -> %s  %5.1f h  quality %d/5  BG %s -> %s%s\n",
					e.ID, e.BedTime.Format("2006-01-02 15:04"), e.WakeTime.Format("2006-01-02 15:04"),
					e.Hours(), e.Quality, formatGlucose(e.BloodGlucoseBedtime), formatGlucose(e.BloodGlucoseWaking), notes)
			}
			return nil
		})
	},
}

var sleepUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a sleep entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadSleepLog(sqldb)
			if err != nil {
				return err
			}
			entry, ok := log.Get(args[0])
			if !ok {
				return fmt.Errorf("sleep entry %s not found", args[0])
			}
			if cmd.Flags().Changed("bed") {
				bed, err := parseDateTime("--bed", sleepBed)
				if err != nil {
					return err
				}
				entry.BedTime = bed
			}
			if cmd.Flags().Changed("wake") {
				wake, err := parseDateTime("--wake", sleepWake)
				if err != nil {
					return err
				}
				entry.WakeTime = wake
			}
			if cmd.Flags().Changed("quality") {
				if err := validateQuality(sleepQuality); err != nil {
					return err
				}
				entry.Quality = sleepQuality
			}
			if v := optionalIntFlag(cmd, "bg-bedtime", sleepBGBedtime); v != nil {
				entry.BloodGlucoseBedtime = v
			}
			if v := optionalIntFlag(cmd, "bg-waking", sleepBGWaking); v != nil {
				entry.BloodGlucoseWaking = v
			}
			if cmd.Flags().Changed("notes") {
				entry.Notes = sleepNotes
			}
			log.Update(entry)
			updated, _ := log.Get(entry.ID)
			if err := journal.UpdateSleep(sqldb, updated); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated sleep %s (%.1f hours)\n", updated.ID, updated.Hours())
			return nil
		})
	},
}

var sleepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sleep entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadSleepLog(sqldb)
			if err != nil {
				return err
			}
			log.Delete(args[0])
			if err := journal.DeleteSleep(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sleep %s\n", args[0])
			return nil
		})
	},
}

func validateQuality(value int) error {
	if value < 1 || value > 5 {
		return fmt.Errorf("--quality must be between 1 and 5")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepAddCmd, sleepListCmd, sleepUpdateCmd, sleepDeleteCmd)

	for _, cmd := range []*cobra.Command{sleepAddCmd, sleepUpdateCmd} {
		cmd.Flags().StringVar(&sleepBed, "bed", "", `Bed time "YYYY-MM-DD HH:MM"`)
		cmd.Flags().StringVar(&sleepWake, "wake", "", `Wake time "YYYY-MM-DD HH:MM"`)
		cmd.Flags().IntVar(&sleepQuality, "quality", 3, "Sleep quality 1-5")
		cmd.Flags().IntVar(&sleepBGBedtime, "bg-bedtime", 0, "Blood glucose at bedtime (mg/dL)")
		cmd.Flags().IntVar(&sleepBGWaking, "bg-waking", 0, "Blood glucose on waking (mg/dL)")
		cmd.Flags().StringVar(&sleepNotes, "notes", "", "Notes")
	}
	sleepListCmd.Flags().IntVar(&sleepLast, "last", 0, "Show only the most recent N entries")
}
