package glucolog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/journal"
	"github.com/varsha/glucolog/internal/summary"
)

const chartBarWidth = 40

var chartLast int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render bar charts over the most recent entries",
}

var chartActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Chart recent activity durations (minutes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadActivityLog(sqldb)
			if err != nil {
				return err
			}
			rows := make([]chartRow, 0)
			for _, e := range summary.Recent(log, chartLast) {
				rows = append(rows, chartRow{
					label: e.Date.Format("01-02"),
					value: float64(e.DurationMin),
					text:  fmt.Sprintf("%d min", e.DurationMin),
				})
			}
			renderChart(cmd, "Activity Duration", rows)
			return nil
		})
	},
}

var chartCaloriesCmd = &cobra.Command{
	Use:   "calories",
	Short: "Chart recent per-meal calorie intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadFoodLog(sqldb)
			if err != nil {
				return err
			}
			rows := make([]chartRow, 0)
			for _, e := range summary.Recent(log, chartLast) {
				rows = append(rows, chartRow{
					label: e.Date.Format("01-02"),
					value: float64(e.Calories()),
					text:  fmt.Sprintf("%d kcal", e.Calories()),
				})
			}
			renderChart(cmd, "Calories Intake", rows)
			return nil
		})
	},
}

var chartSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Chart recent sleep hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadSleepLog(sqldb)
			if err != nil {
				return err
			}
			rows := make([]chartRow, 0)
			for _, e := range summary.Recent(log, chartLast) {
				rows = append(rows, chartRow{
					label: e.Date.Format("01-02"),
					value: e.Hours(),
					text:  fmt.Sprintf("%.1f h", e.Hours()),
				})
			}
			renderChart(cmd, "Sleep Hours", rows)
			return nil
		})
	},
}

type chartRow struct {
	label string
	value float64
	text  string
}

func renderChart(cmd *cobra.Command, title string, rows []chartRow) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (last %d entries)\n", title, chartLast)
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "  nothing logged yet")
		return
	}
	max := 0.0
	for _, r := range rows {
		if r.value > max {
			max = r.value
		}
	}
	for _, r := range rows {
		width := 0
		if max > 0 && r.value > 0 {
			width = int(r.value / max * chartBarWidth)
			if width == 0 {
				width = 1
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-*s %s\n", r.label, chartBarWidth, strings.Repeat("#", width), r.text)
	}
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.AddCommand(chartActivityCmd, chartCaloriesCmd, chartSleepCmd)

	chartCmd.PersistentFlags().IntVar(&chartLast, "last", 7, "Number of most recent entries to chart")
}
