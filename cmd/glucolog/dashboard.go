package glucolog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/journal"
	"github.com/varsha/glucolog/internal/summary"
)

var dashboardDate string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the daily rollup for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if dashboardDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dashboardDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", dashboardDate)
			}
			target = parsed
		}
		return withDB(func(sqldb *sql.DB) error {
			activities, err := journal.LoadActivityLog(sqldb)
			if err != nil {
				return err
			}
			foods, err := journal.LoadFoodLog(sqldb)
			if err != nil {
				return err
			}
			sleeps, err := journal.LoadSleepLog(sqldb)
			if err != nil {
				return err
			}

			rollup := summary.Summarize(target, activities, foods, sleeps)
			glucose := "--"
			if rollup.Glucose.OK {
				glucose = fmt.Sprintf("%d mg/dL", rollup.Glucose.MgDL)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Overview for %s\n", rollup.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %d min\n", rollup.ActivityMinutes)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\n", rollup.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep:    %.1f h\n", rollup.SleepHours)
			fmt.Fprintf(cmd.OutOrStdout(), "Glucose:  %s\n", glucose)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "Date YYYY-MM-DD (default today)")
}
