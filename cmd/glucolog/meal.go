package glucolog

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Compose meal macros from catalog ingredients",
}

var mealIngredients []string

var mealComposeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Preview a meal's macro totals without logging it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(mealIngredients) == 0 {
			return fmt.Errorf("at least one --ingredient is required")
		}
		composer, breakdown, err := composeIngredients(mealIngredients)
		if err != nil {
			return err
		}
		totals := composer.Totals()
		fmt.Fprint(cmd.OutOrStdout(), breakdown)
		fmt.Fprintf(cmd.OutOrStdout(), "Totals: C %dg | P %dg | F %dg (%d kcal)\n",
			totals.CarbsG, totals.ProteinG, totals.FatG,
			totals.CarbsG*4+totals.ProteinG*4+totals.FatG*9)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealComposeCmd)

	mealComposeCmd.Flags().StringArrayVar(&mealIngredients, "ingredient", nil, `Catalog ingredient as "description=grams" (repeatable)`)
}
