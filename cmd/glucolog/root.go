package glucolog

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath       string
	foodDataPath string
)

var rootCmd = &cobra.Command{
	Use:   "glucolog",
	Short: "glucolog tracks activity, food, sleep, and blood glucose from your terminal",
	Long:  "glucolog is a local-first health log. It records activity, meals, and sleep with optional blood glucose readings, resolves meal ingredients against the FoodData Central reference dataset, and rolls everything up into daily summaries and charts.",
}

func Execute() {
	// A missing .env file is fine; flags and real env still apply.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite journal database")
	rootCmd.PersistentFlags().StringVar(&foodDataPath, "food-data", "", "Path to FoodData Central JSON file")
}
