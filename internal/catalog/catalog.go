// Package catalog loads and indexes the FoodData Central foundation
// food dataset and answers per-100g macro lookups by description.
package catalog

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
)

// Nutrient numbers per the FoodData Central dataset.
const (
	nutrientProtein = "203"
	nutrientFat     = "204"
	nutrientCarbs   = "205"
)

// FoodItem is one row of the reference dataset: grams of each macro
// per 100g of food. Items are built once at load time and read-only
// afterwards.
type FoodItem struct {
	Description    string  `json:"description"`
	CarbsPer100g   float64 `json:"carbs_per_100g"`
	ProteinPer100g float64 `json:"protein_per_100g"`
	FatPer100g     float64 `json:"fat_per_100g"`
}

// Catalog indexes reference foods by exact description. A failed load
// yields an empty catalog, never an error; manual macro entry stays
// usable without reference data.
type Catalog struct {
	items map[string]FoodItem
	order []string
}

type foodDataFile struct {
	FoundationFoods []foodDataRecord `json:"FoundationFoods"`
}

type foodDataRecord struct {
	Description   string `json:"description"`
	FoodNutrients []struct {
		Nutrient struct {
			Number string `json:"number"`
		} `json:"nutrient"`
		Amount float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// Load parses the dataset at path. Missing or malformed files produce
// an empty catalog. Duplicate descriptions keep the first occurrence.
func Load(path string) *Catalog {
	c := Empty()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var parsed foodDataFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return c
	}
	for _, rec := range parsed.FoundationFoods {
		if rec.Description == "" {
			continue
		}
		if _, exists := c.items[rec.Description]; exists {
			continue
		}
		item := FoodItem{Description: rec.Description}
		for _, n := range rec.FoodNutrients {
			switch n.Nutrient.Number {
			case nutrientCarbs:
				item.CarbsPer100g = n.Amount
			case nutrientProtein:
				item.ProteinPer100g = n.Amount
			case nutrientFat:
				item.FatPer100g = n.Amount
			}
		}
		c.items[rec.Description] = item
		c.order = append(c.order, rec.Description)
	}
	return c
}

// Empty returns a catalog with zero entries.
func Empty() *Catalog {
	return &Catalog{items: map[string]FoodItem{}}
}

// Len reports the number of indexed foods.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds a food by exact, case-sensitive description.
func (c *Catalog) Lookup(description string) (FoodItem, bool) {
	item, ok := c.items[description]
	return item, ok
}

// Search returns foods whose description contains query,
// case-insensitively, in load order. An empty query matches all.
func (c *Catalog) Search(query string) []FoodItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]FoodItem, 0)
	for _, desc := range c.order {
		if query == "" || strings.Contains(strings.ToLower(desc), query) {
			out = append(out, c.items[desc])
		}
	}
	return out
}

var (
	sharedOnce sync.Once
	shared     *Catalog
)

// Shared returns the process-wide catalog, loading it from path on
// first call. The load happens exactly once; later calls ignore path.
// Tests should use Load directly instead of the shared instance.
func Shared(path string) *Catalog {
	sharedOnce.Do(func() {
		shared = Load(path)
	})
	return shared
}
