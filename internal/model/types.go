// Package model defines the log entry kinds shared by the stores,
// the daily rollup, and the CLI.
package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is implemented by every log entry kind. WithDate returns a
// copy carrying the given creation date; stores use it to keep the
// original date across updates.
type Entry[T any] interface {
	EntryID() string
	EntryDate() time.Time
	WithDate(time.Time) T
}

// NewID returns a fresh ULID for a log entry. Ids are assigned once
// at creation and never reused.
func NewID() string {
	return ulid.Make().String()
}

// MealTypes are the accepted values for FoodEntry.MealType.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

type ActivityEntry struct {
	ID                 string    `json:"id"`
	Date               time.Time `json:"date"`
	Type               string    `json:"type"`
	DurationMin        int       `json:"duration_min"`
	Intensity          string    `json:"intensity"`
	BloodGlucoseBefore *int      `json:"blood_glucose_before,omitempty"`
	BloodGlucoseAfter  *int      `json:"blood_glucose_after,omitempty"`
}

func (e ActivityEntry) EntryID() string      { return e.ID }
func (e ActivityEntry) EntryDate() time.Time { return e.Date }

func (e ActivityEntry) WithDate(d time.Time) ActivityEntry {
	e.Date = d
	return e
}

type FoodEntry struct {
	ID                 string    `json:"id"`
	Date               time.Time `json:"date"`
	MealType           string    `json:"meal_type"`
	FoodName           string    `json:"food_name"`
	CarbsG             int       `json:"carbs_g"`
	ProteinG           int       `json:"protein_g"`
	FatG               int       `json:"fat_g"`
	BloodGlucoseBefore *int      `json:"blood_glucose_before,omitempty"`
	BloodGlucoseAfter  *int      `json:"blood_glucose_after,omitempty"`
	InsulinDose        *float64  `json:"insulin_dose,omitempty"`
}

func (e FoodEntry) EntryID() string      { return e.ID }
func (e FoodEntry) EntryDate() time.Time { return e.Date }

func (e FoodEntry) WithDate(d time.Time) FoodEntry {
	e.Date = d
	return e
}

// Calories derives the entry's energy from its macros using the
// Atwater factors (4 kcal/g carbs and protein, 9 kcal/g fat).
func (e FoodEntry) Calories() int {
	return e.CarbsG*4 + e.ProteinG*4 + e.FatG*9
}

type SleepEntry struct {
	ID                  string    `json:"id"`
	Date                time.Time `json:"date"`
	BedTime             time.Time `json:"bed_time"`
	WakeTime            time.Time `json:"wake_time"`
	Quality             int       `json:"quality"`
	BloodGlucoseBedtime *int      `json:"blood_glucose_bedtime,omitempty"`
	BloodGlucoseWaking  *int      `json:"blood_glucose_waking,omitempty"`
	Notes               string    `json:"notes,omitempty"`
}

func (e SleepEntry) EntryID() string      { return e.ID }
func (e SleepEntry) EntryDate() time.Time { return e.Date }

func (e SleepEntry) WithDate(d time.Time) SleepEntry {
	e.Date = d
	return e
}

// Duration is derived from the bed and wake times rather than stored.
// It may be negative when WakeTime precedes BedTime; callers get the
// raw difference.
func (e SleepEntry) Duration() time.Duration {
	return e.WakeTime.Sub(e.BedTime)
}

// Hours is the derived duration in hours.
func (e SleepEntry) Hours() float64 {
	return e.Duration().Seconds() / 3600
}
