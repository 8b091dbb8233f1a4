package glucolog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/journal"
	"github.com/varsha/glucolog/internal/meal"
	"github.com/varsha/glucolog/internal/model"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and manage food entries",
}

var (
	foodMealType    string
	foodName        string
	foodCarbs       int
	foodProtein     int
	foodFat         int
	foodIngredients []string
	foodBGBefore    int
	foodBGAfter     int
	foodInsulin     float64
	foodDate        string
	foodTime        string
	foodLast        int
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal, either with manual macros or composed from --ingredient picks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(foodName) == "" {
			return fmt.Errorf("--name is required")
		}
		if err := validateMealType(foodMealType); err != nil {
			return err
		}
		for _, pair := range []struct {
			name  string
			value int
		}{{"carbs", foodCarbs}, {"protein", foodProtein}, {"fat", foodFat}} {
			if err := validateNonNegativeInt(pair.name, pair.value); err != nil {
				return err
			}
		}
		date, err := parseDateTimeOrNow(foodDate, foodTime)
		if err != nil {
			return err
		}

		carbs, protein, fat := foodCarbs, foodProtein, foodFat
		if len(foodIngredients) > 0 {
			// Ingredient composition overrides any manual macros.
			composer, breakdown, err := composeIngredients(foodIngredients)
			if err != nil {
				return err
			}
			totals := composer.Totals()
			carbs, protein, fat = totals.CarbsG, totals.ProteinG, totals.FatG
			fmt.Fprint(cmd.OutOrStdout(), breakdown)
		}

		entry := model.FoodEntry{
			ID:                 model.NewID(),
			Date:               date,
			MealType:           foodMealType,
			FoodName:           foodName,
			CarbsG:             carbs,
			ProteinG:           protein,
			FatG:               fat,
			BloodGlucoseBefore: optionalIntFlag(cmd, "bg-before", foodBGBefore),
			BloodGlucoseAfter:  optionalIntFlag(cmd, "bg-after", foodBGAfter),
			InsulinDose:        optionalFloatFlag(cmd, "insulin", foodInsulin),
		}
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadFoodLog(sqldb)
			if err != nil {
				return err
			}
			log.Insert(entry)
			if err := journal.InsertFood(sqldb, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %q: C %dg | P %dg | F %dg (%d kcal)\n",
				entry.MealType, entry.FoodName, entry.CarbsG, entry.ProteinG, entry.FatG, entry.Calories())
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadFoodLog(sqldb)
			if err != nil {
				return err
			}
			entries := log.All()
			if foodLast > 0 && foodLast < len(entries) {
				entries = entries[:foodLast]
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged.")
				return nil
			}
			for _, e := range entries {
				insulin := ""
				if e.InsulinDose != nil {
					insulin = fmt.Sprintf("  insulin %.1fu", *e.InsulinDose)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-9s %-24s C %3dg | P %3dg | F %3dg  %4d kcal  BG %s -> %s%s\n",
					e.ID, e.Date.Format("2006-01-02 15:04"), e.MealType, e.FoodName,
					e.CarbsG, e.ProteinG, e.FatG, e.Calories(),
					formatGlucose(e.BloodGlucoseBefore), formatGlucose(e.BloodGlucoseAfter), insulin)
			}
			return nil
		})
	},
}

var foodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadFoodLog(sqldb)
			if err != nil {
				return err
			}
			entry, ok := log.Get(args[0])
			if !ok {
				return fmt.Errorf("food entry %s not found", args[0])
			}
			if cmd.Flags().Changed("meal") {
				if err := validateMealType(foodMealType); err != nil {
					return err
				}
				entry.MealType = foodMealType
			}
			if cmd.Flags().Changed("name") {
				entry.FoodName = foodName
			}
			for _, pair := range []struct {
				flag  string
				value int
				dst   *int
			}{
				{"carbs", foodCarbs, &entry.CarbsG},
				{"protein", foodProtein, &entry.ProteinG},
				{"fat", foodFat, &entry.FatG},
			} {
				if cmd.Flags().Changed(pair.flag) {
					if err := validateNonNegativeInt(pair.flag, pair.value); err != nil {
						return err
					}
					*pair.dst = pair.value
				}
			}
			if v := optionalIntFlag(cmd, "bg-before", foodBGBefore); v != nil {
				entry.BloodGlucoseBefore = v
			}
			if v := optionalIntFlag(cmd, "bg-after", foodBGAfter); v != nil {
				entry.BloodGlucoseAfter = v
			}
			if v := optionalFloatFlag(cmd, "insulin", foodInsulin); v != nil {
				entry.InsulinDose = v
			}
			log.Update(entry)
			updated, _ := log.Get(entry.ID)
			if err := journal.UpdateFood(sqldb, updated); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food entry %s\n", updated.ID)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			log, err := journal.LoadFoodLog(sqldb)
			if err != nil {
				return err
			}
			log.Delete(args[0])
			if err := journal.DeleteFood(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food entry %s\n", args[0])
			return nil
		})
	},
}

func validateMealType(value string) error {
	for _, t := range model.MealTypes {
		if value == t {
			return nil
		}
	}
	return fmt.Errorf("invalid --meal %q (expected one of %s)", value, strings.Join(model.MealTypes, ", "))
}

// composeIngredients builds a composer from "description=grams" specs
// resolved against the reference catalog and returns it with a
// printable per-ingredient breakdown.
func composeIngredients(specs []string) (*meal.Composer, string, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, "", err
	}
	composer := meal.NewComposer()
	var b strings.Builder
	for _, spec := range specs {
		desc, amount, found := strings.Cut(spec, "=")
		if !found {
			return nil, "", fmt.Errorf("invalid --ingredient %q (expected \"description=grams\")", spec)
		}
		desc = strings.TrimSpace(desc)
		item, ok := cat.Lookup(desc)
		if !ok {
			return nil, "", fmt.Errorf("ingredient %q not found in catalog (%d entries loaded)", desc, cat.Len())
		}
		sel := meal.NewSelection(item, amount)
		composer.Add(sel)
		fmt.Fprintf(&b, "  %-40s %6.1fg  C %5.1f | P %5.1f | F %5.1f\n",
			item.Description, sel.AmountGrams, sel.Carbs(), sel.Protein(), sel.Fat())
	}
	return composer, b.String(), nil
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodUpdateCmd, foodDeleteCmd)

	for _, cmd := range []*cobra.Command{foodAddCmd, foodUpdateCmd} {
		cmd.Flags().StringVar(&foodMealType, "meal", "snack", "Meal type (breakfast, lunch, dinner, snack)")
		cmd.Flags().StringVar(&foodName, "name", "", "Food name")
		cmd.Flags().IntVar(&foodCarbs, "carbs", 0, "Carbohydrate (g)")
		cmd.Flags().IntVar(&foodProtein, "protein", 0, "Protein (g)")
		cmd.Flags().IntVar(&foodFat, "fat", 0, "Fat (g)")
		cmd.Flags().IntVar(&foodBGBefore, "bg-before", 0, "Blood glucose before (mg/dL)")
		cmd.Flags().IntVar(&foodBGAfter, "bg-after", 0, "Blood glucose after (mg/dL)")
		cmd.Flags().Float64Var(&foodInsulin, "insulin", 0, "Insulin dose (units)")
	}
	foodAddCmd.Flags().StringArrayVar(&foodIngredients, "ingredient", nil, `Catalog ingredient as "description=grams" (repeatable; overrides manual macros)`)
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date YYYY-MM-DD (default today)")
	foodAddCmd.Flags().StringVar(&foodTime, "time", "", "Time HH:MM")
	foodListCmd.Flags().IntVar(&foodLast, "last", 0, "Show only the most recent N entries")
}
