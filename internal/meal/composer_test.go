package meal_test

import (
	"testing"

	"github.com/varsha/glucolog/internal/catalog"
	"github.com/varsha/glucolog/internal/meal"
)

var (
	banana = catalog.FoodItem{Description: "Banana, raw", CarbsPer100g: 17, ProteinPer100g: 1.1, FatPer100g: 0.3}
	rice   = catalog.FoodItem{Description: "Rice, white, cooked", CarbsPer100g: 28.2, ProteinPer100g: 2.7, FatPer100g: 0.3}
)

func TestEmptyComposerTotalsAreZero(t *testing.T) {
	t.Parallel()
	c := meal.NewComposer()
	if got := c.Totals(); got != (meal.Totals{}) {
		t.Fatalf("expected zero totals for empty meal, got %+v", got)
	}
}

func TestSingleIngredientRoundsHalfUp(t *testing.T) {
	t.Parallel()
	c := meal.NewComposer()
	// 17 g/100g at 150g contributes 25.5g carbs, which rounds to 26.
	c.Add(meal.NewSelection(banana, "150"))

	totals := c.Totals()
	if totals.CarbsG != 26 {
		t.Fatalf("expected carbs 26, got %d", totals.CarbsG)
	}
	if totals.ProteinG != 2 { // 1.65 -> 2
		t.Fatalf("expected protein 2, got %d", totals.ProteinG)
	}
	if totals.FatG != 0 { // 0.45 -> 0
		t.Fatalf("expected fat 0, got %d", totals.FatG)
	}
}

func TestTotalsSumAcrossSelections(t *testing.T) {
	t.Parallel()
	c := meal.NewComposer()
	c.Add(meal.NewSelection(banana, "100"))
	c.Add(meal.NewSelection(rice, "200"))

	totals := c.Totals()
	if totals.CarbsG != 73 { // 17 + 56.4 = 73.4 -> 73
		t.Fatalf("expected carbs 73, got %d", totals.CarbsG)
	}
	if totals.ProteinG != 7 { // 1.1 + 5.4 = 6.5 -> 7
		t.Fatalf("expected protein 7, got %d", totals.ProteinG)
	}
	if totals.FatG != 1 { // 0.3 + 0.6 = 0.9 -> 1
		t.Fatalf("expected fat 1, got %d", totals.FatG)
	}
}

func TestUnparseableAmountContributesZero(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "abc", "12x", "-50"} {
		c := meal.NewComposer()
		c.Add(meal.NewSelection(banana, raw))
		if got := c.Totals(); got != (meal.Totals{}) {
			t.Fatalf("amount %q: expected zero totals, got %+v", raw, got)
		}
	}
}

func TestRemoveAndSetAmountRecompute(t *testing.T) {
	t.Parallel()
	c := meal.NewComposer()
	first := meal.NewSelection(banana, "100")
	second := meal.NewSelection(rice, "100")
	c.Add(first)
	c.Add(second)

	c.Remove(second.ID)
	if c.Len() != 1 {
		t.Fatalf("expected 1 selection after remove, got %d", c.Len())
	}
	if got := c.Totals().CarbsG; got != 17 {
		t.Fatalf("expected carbs 17 after remove, got %d", got)
	}

	c.SetAmount(first.ID, "150")
	if got := c.Totals().CarbsG; got != 26 {
		t.Fatalf("expected carbs 26 after amount change, got %d", got)
	}

	c.SetAmount(first.ID, "junk")
	if got := c.Totals(); got != (meal.Totals{}) {
		t.Fatalf("expected zero totals after bad amount, got %+v", got)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	t.Parallel()
	c := meal.NewComposer()
	c.Add(meal.NewSelection(banana, "100"))

	c.Remove("not-an-id")
	c.SetAmount("not-an-id", "500")
	if c.Len() != 1 {
		t.Fatalf("expected 1 selection, got %d", c.Len())
	}
	if got := c.Totals().CarbsG; got != 17 {
		t.Fatalf("expected carbs 17, got %d", got)
	}
}
