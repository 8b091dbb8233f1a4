// Package meal composes a food log entry's macro totals from
// reference-catalog ingredient selections.
package meal

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/varsha/glucolog/internal/catalog"
)

// Selection is one chosen reference food plus a gram amount. The id
// only addresses the row while composing; it is not persisted with
// the resulting entry.
type Selection struct {
	ID          string
	Item        catalog.FoodItem
	AmountGrams float64
}

// NewSelection builds a selection from a catalog item and a raw
// amount string. Unparseable or negative amounts become 0.
func NewSelection(item catalog.FoodItem, rawAmount string) Selection {
	return Selection{
		ID:          uuid.NewString(),
		Item:        item,
		AmountGrams: ParseAmount(rawAmount),
	}
}

// ParseAmount parses a decimal gram amount from text input. Parse
// failures and negative values yield 0, never an error.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (s Selection) Carbs() float64   { return s.Item.CarbsPer100g * s.AmountGrams / 100 }
func (s Selection) Protein() float64 { return s.Item.ProteinPer100g * s.AmountGrams / 100 }
func (s Selection) Fat() float64     { return s.Item.FatPer100g * s.AmountGrams / 100 }

// Totals are a meal's macro sums, each rounded half-up to whole grams
// independently of the others.
type Totals struct {
	CarbsG   int
	ProteinG int
	FatG     int
}

// Composer aggregates ingredient selections for a single meal.
// Totals are recomputed eagerly on every mutation, so callers never
// re-derive them manually.
type Composer struct {
	selections []Selection
	totals     Totals
}

func NewComposer() *Composer {
	return &Composer{}
}

// Add appends a selection to the meal.
func (c *Composer) Add(s Selection) {
	c.selections = append(c.selections, s)
	c.recompute()
}

// Remove drops the selection with the given id. Unknown ids are a
// no-op.
func (c *Composer) Remove(id string) {
	for i, s := range c.selections {
		if s.ID == id {
			c.selections = append(c.selections[:i], c.selections[i+1:]...)
			break
		}
	}
	c.recompute()
}

// SetAmount replaces a selection's gram amount from raw text input,
// with the same parse rules as NewSelection. Unknown ids are a no-op.
func (c *Composer) SetAmount(id, rawAmount string) {
	for i := range c.selections {
		if c.selections[i].ID == id {
			c.selections[i].AmountGrams = ParseAmount(rawAmount)
			break
		}
	}
	c.recompute()
}

// Totals returns the current rounded macro totals. With zero
// selections all totals are 0.
func (c *Composer) Totals() Totals {
	return c.totals
}

// Selections returns the current selections in add order.
func (c *Composer) Selections() []Selection {
	out := make([]Selection, len(c.selections))
	copy(out, c.selections)
	return out
}

func (c *Composer) Len() int {
	return len(c.selections)
}

func (c *Composer) recompute() {
	var carbs, protein, fat float64
	for _, s := range c.selections {
		carbs += s.Carbs()
		protein += s.Protein()
		fat += s.Fat()
	}
	c.totals = Totals{
		CarbsG:   roundHalfUp(carbs),
		ProteinG: roundHalfUp(protein),
		FatG:     roundHalfUp(fat),
	}
}

// roundHalfUp rounds to the nearest integer with halves going up
// (12.5 -> 13).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
