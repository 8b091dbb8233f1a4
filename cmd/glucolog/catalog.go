package glucolog

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the reference nutrition catalog",
}

var catalogLimit int

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search catalog descriptions by substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		results := cat.Search(args[0])
		if len(results) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No matches for %q (%d entries loaded)\n", args[0], cat.Len())
			return nil
		}
		if catalogLimit > 0 && len(results) > catalogLimit {
			results = results[:catalogLimit]
		}
		for _, item := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%-48s C %5.1f | P %5.1f | F %5.1f (per 100g)\n",
				item.Description, item.CarbsPer100g, item.ProteinPer100g, item.FatPer100g)
		}
		return nil
	},
}

var catalogLookupCmd = &cobra.Command{
	Use:   "lookup <description>",
	Short: "Look up one food by exact description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		item, ok := cat.Lookup(args[0])
		if !ok {
			// A miss is an empty result, not a failure.
			fmt.Fprintf(cmd.OutOrStdout(), "No exact match for %q\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", item.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "  Carbs:   %.2f g per 100g\n", item.CarbsPer100g)
		fmt.Fprintf(cmd.OutOrStdout(), "  Protein: %.2f g per 100g\n", item.ProteinPer100g)
		fmt.Fprintf(cmd.OutOrStdout(), "  Fat:     %.2f g per 100g\n", item.FatPer100g)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSearchCmd, catalogLookupCmd)

	catalogSearchCmd.Flags().IntVar(&catalogLimit, "limit", 25, "Maximum results to print")
}
