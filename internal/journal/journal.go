// Package journal persists log entries to sqlite behind the store
// contract: a CLI session loads each log from the journal at startup
// and mirrors every insert, update and delete back. The in-memory
// stores stay the source of truth while the process runs.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/varsha/glucolog/internal/model"
	"github.com/varsha/glucolog/internal/store"
)

// LoadActivityLog rebuilds the activity log in journal order. Rows
// are replayed oldest first so that each prepend leaves the newest
// entry at the front, matching the insertion order the store had when
// the rows were written.
func LoadActivityLog(db *sql.DB) (*store.Log[model.ActivityEntry], error) {
	rows, err := db.Query(`
SELECT id, date, type, duration_min, intensity, bg_before, bg_after
FROM activity_entries
ORDER BY seq ASC
`)
	if err != nil {
		return nil, fmt.Errorf("load activity entries: %w", err)
	}
	defer rows.Close()

	log := store.New[model.ActivityEntry]()
	for rows.Next() {
		var e model.ActivityEntry
		var dateRaw string
		var before, after sql.NullInt64
		if err := rows.Scan(&e.ID, &dateRaw, &e.Type, &e.DurationMin, &e.Intensity, &before, &after); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		if e.Date, err = parseTime(dateRaw); err != nil {
			return nil, fmt.Errorf("activity entry %s: %w", e.ID, err)
		}
		e.BloodGlucoseBefore = nullableInt(before)
		e.BloodGlucoseAfter = nullableInt(after)
		log.Insert(e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity entries: %w", err)
	}
	return log, nil
}

func InsertActivity(db *sql.DB, e model.ActivityEntry) error {
	_, err := db.Exec(`
INSERT INTO activity_entries(id, date, type, duration_min, intensity, bg_before, bg_after)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, e.ID, formatTime(e.Date), e.Type, e.DurationMin, e.Intensity, intArg(e.BloodGlucoseBefore), intArg(e.BloodGlucoseAfter))
	if err != nil {
		return fmt.Errorf("insert activity entry %s: %w", e.ID, err)
	}
	return nil
}

func UpdateActivity(db *sql.DB, e model.ActivityEntry) error {
	_, err := db.Exec(`
UPDATE activity_entries
SET date = ?, type = ?, duration_min = ?, intensity = ?, bg_before = ?, bg_after = ?
WHERE id = ?
`, formatTime(e.Date), e.Type, e.DurationMin, e.Intensity, intArg(e.BloodGlucoseBefore), intArg(e.BloodGlucoseAfter), e.ID)
	if err != nil {
		return fmt.Errorf("update activity entry %s: %w", e.ID, err)
	}
	return nil
}

func DeleteActivity(db *sql.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM activity_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete activity entry %s: %w", id, err)
	}
	return nil
}

// LoadFoodLog rebuilds the food log in journal order.
func LoadFoodLog(db *sql.DB) (*store.Log[model.FoodEntry], error) {
	rows, err := db.Query(`
SELECT id, date, meal_type, food_name, carbs_g, protein_g, fat_g, bg_before, bg_after, insulin_dose
FROM food_entries
ORDER BY seq ASC
`)
	if err != nil {
		return nil, fmt.Errorf("load food entries: %w", err)
	}
	defer rows.Close()

	log := store.New[model.FoodEntry]()
	for rows.Next() {
		var e model.FoodEntry
		var dateRaw string
		var before, after sql.NullInt64
		var insulin sql.NullFloat64
		if err := rows.Scan(&e.ID, &dateRaw, &e.MealType, &e.FoodName, &e.CarbsG, &e.ProteinG, &e.FatG, &before, &after, &insulin); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		if e.Date, err = parseTime(dateRaw); err != nil {
			return nil, fmt.Errorf("food entry %s: %w", e.ID, err)
		}
		e.BloodGlucoseBefore = nullableInt(before)
		e.BloodGlucoseAfter = nullableInt(after)
		if insulin.Valid {
			v := insulin.Float64
			e.InsulinDose = &v
		}
		log.Insert(e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}
	return log, nil
}

func InsertFood(db *sql.DB, e model.FoodEntry) error {
	_, err := db.Exec(`
INSERT INTO food_entries(id, date, meal_type, food_name, carbs_g, protein_g, fat_g, bg_before, bg_after, insulin_dose)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, e.ID, formatTime(e.Date), e.MealType, e.FoodName, e.CarbsG, e.ProteinG, e.FatG, intArg(e.BloodGlucoseBefore), intArg(e.BloodGlucoseAfter), floatArg(e.InsulinDose))
	if err != nil {
		return fmt.Errorf("insert food entry %s: %w", e.ID, err)
	}
	return nil
}

func UpdateFood(db *sql.DB, e model.FoodEntry) error {
	_, err := db.Exec(`
UPDATE food_entries
SET date = ?, meal_type = ?, food_name = ?, carbs_g = ?, protein_g = ?, fat_g = ?, bg_before = ?, bg_after = ?, insulin_dose = ?
WHERE id = ?
`, formatTime(e.Date), e.MealType, e.FoodName, e.CarbsG, e.ProteinG, e.FatG, intArg(e.BloodGlucoseBefore), intArg(e.BloodGlucoseAfter), floatArg(e.InsulinDose), e.ID)
	if err != nil {
		return fmt.Errorf("update food entry %s: %w", e.ID, err)
	}
	return nil
}

func DeleteFood(db *sql.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM food_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete food entry %s: %w", id, err)
	}
	return nil
}

// LoadSleepLog rebuilds the sleep log in journal order.
func LoadSleepLog(db *sql.DB) (*store.Log[model.SleepEntry], error) {
	rows, err := db.Query(`
SELECT id, date, bed_time, wake_time, quality, bg_bedtime, bg_waking, notes
FROM sleep_entries
ORDER BY seq ASC
`)
	if err != nil {
		return nil, fmt.Errorf("load sleep entries: %w", err)
	}
	defer rows.Close()

	log := store.New[model.SleepEntry]()
	for rows.Next() {
		var e model.SleepEntry
		var dateRaw, bedRaw, wakeRaw string
		var bedtime, waking sql.NullInt64
		if err := rows.Scan(&e.ID, &dateRaw, &bedRaw, &wakeRaw, &e.Quality, &bedtime, &waking, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan sleep entry: %w", err)
		}
		if e.Date, err = parseTime(dateRaw); err != nil {
			return nil, fmt.Errorf("sleep entry %s: %w", e.ID, err)
		}
		if e.BedTime, err = parseTime(bedRaw); err != nil {
			return nil, fmt.Errorf("sleep entry %s: %w", e.ID, err)
		}
		if e.WakeTime, err = parseTime(wakeRaw); err != nil {
			return nil, fmt.Errorf("sleep entry %s: %w", e.ID, err)
		}
		e.BloodGlucoseBedtime = nullableInt(bedtime)
		e.BloodGlucoseWaking = nullableInt(waking)
		log.Insert(e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sleep entries: %w", err)
	}
	return log, nil
}

func InsertSleep(db *sql.DB, e model.SleepEntry) error {
	_, err := db.Exec(`
INSERT INTO sleep_entries(id, date, bed_time, wake_time, quality, bg_bedtime, bg_waking, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, e.ID, formatTime(e.Date), formatTime(e.BedTime), formatTime(e.WakeTime), e.Quality, intArg(e.BloodGlucoseBedtime), intArg(e.BloodGlucoseWaking), e.Notes)
	if err != nil {
		return fmt.Errorf("insert sleep entry %s: %w", e.ID, err)
	}
	return nil
}

func UpdateSleep(db *sql.DB, e model.SleepEntry) error {
	_, err := db.Exec(`
UPDATE sleep_entries
SET date = ?, bed_time = ?, wake_time = ?, quality = ?, bg_bedtime = ?, bg_waking = ?, notes = ?
WHERE id = ?
`, formatTime(e.Date), formatTime(e.BedTime), formatTime(e.WakeTime), e.Quality, intArg(e.BloodGlucoseBedtime), intArg(e.BloodGlucoseWaking), e.Notes, e.ID)
	if err != nil {
		return fmt.Errorf("update sleep entry %s: %w", e.ID, err)
	}
	return nil
}

func DeleteSleep(db *sql.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM sleep_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete sleep entry %s: %w", id, err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return t.Local(), nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func intArg(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
