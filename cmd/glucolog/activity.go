package glucolog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/journal"
	"github.com/varsha/glucolog/internal/model"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Log and manage activity entries",
}

var (
	activityType      string
	activityDuration  int
	activityIntensity string
	activityBGBefore  int
	activityBGAfter   int
	activityDate      string
	activityTime      string
	activityLast      int
)

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if activityType == "" {
			return fmt.Errorf("--type is required")
		}
		if err := validateNonNegativeInt("duration", activityDuration); err != nil {
			return err
		}
		date, err := parseDateTimeOrNow(activityDate, activityTime)
		if err != nil {
			return err
		}
		entry := model.ActivityEntry{
			ID:                 model.NewID(),
			Date:               date,
			Type:               activityType,
			DurationMin:        activityDuration,
			Intensity:          activityIntensity,
			BloodGlucoseBefore: optionalIntFlag(cmd, "bg-before", activityBGBefore),
			BloodGlucoseAfter:  optionalIntFlag(cmd, "bg-after", activityBGAfter),
		}
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadActivityLog(sqldb)
			if err != nil {
				return err
			}
			log.Insert(entry)
			if err := journal.InsertActivity(sqldb, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged activity %s (%s, %d min)\n", entry.ID, entry.Type, entry.DurationMin)
			return nil
		})
	},
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activity entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadActivityLog(sqldb)
			if err != nil {
				return err
			}
			entries := log.All()
			if activityLast > 0 && activityLast < len(entries) {
				entries = entries[:activityLast]
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activities logged.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-12s %3d min  %-8s  BG %s -> %s\n",
					e.ID, e.Date.Format("2006-01-02 15:04"), e.Type, e.DurationMin, e.Intensity,
					formatGlucose(e.BloodGlucoseBefore), formatGlucose(e.BloodGlucoseAfter))
			}
			return nil
		})
	},
}

var activityUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an activity entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadActivityLog(sqldb)
			if err != nil {
				return err
			}
			entry, ok := log.Get(args[0])
			if !ok {
				return fmt.Errorf("activity entry %s not found", args[0])
			}
			if cmd.Flags().Changed("type") {
				entry.Type = activityType
			}
			if cmd.Flags().Changed("duration") {
				if err := validateNonNegativeInt("duration", activityDuration); err != nil {
					return err
				}
				entry.DurationMin = activityDuration
			}
			if cmd.Flags().Changed("intensity") {
				entry.Intensity = activityIntensity
			}
			if v := optionalIntFlag(cmd, "bg-before", activityBGBefore); v != nil {
				entry.BloodGlucoseBefore = v
			}
			if v := optionalIntFlag(cmd, "bg-after", activityBGAfter); v != nil {
				entry.BloodGlucoseAfter = v
			}
			log.Update(entry)
			updated, _ := log.Get(entry.ID)
			if err := journal.UpdateActivity(sqldb, updated); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s\n", updated.ID)
			return nil
		})
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an activity entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadActivityLog(sqldb)
			if err != nil {
				return err
			}
			log.Delete(args[0])
			if err := journal.DeleteActivity(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityAddCmd, activityListCmd, activityUpdateCmd, activityDeleteCmd)

	for _, cmd := range []*cobra.Command{activityAddCmd, activityUpdateCmd} {
		cmd.Flags().StringVar(&activityType, "type", "", "Activity type (e.g. running)")
		cmd.Flags().IntVar(&activityDuration, "duration", 0, "Duration in minutes")
		cmd.Flags().StringVar(&activityIntensity, "intensity", "moderate", "Intensity (free text)")
		cmd.Flags().IntVar(&activityBGBefore, "bg-before", 0, "Blood glucose before (mg/dL)")
		cmd.Flags().IntVar(&activityBGAfter, "bg-after", 0, "Blood glucose after (mg/dL)")
	}
	activityAddCmd.Flags().StringVar(&activityDate, "date", "", "Date YYYY-MM-DD (default today)")
	activityAddCmd.Flags().StringVar(&activityTime, "time", "", "Time HH:MM")
	activityListCmd.Flags().IntVar(&activityLast, "last", 0, "Show only the most recent N entries")
}
