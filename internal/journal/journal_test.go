package journal_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/varsha/glucolog/internal/db"
	"github.com/varsha/glucolog/internal/journal"
	"github.com/varsha/glucolog/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glucolog.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func intPtr(v int) *int { return &v }

func TestActivityRoundTripPreservesStoreOrder(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	first := model.ActivityEntry{
		ID:                model.NewID(),
		Date:              time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local),
		Type:              "walking",
		DurationMin:       20,
		Intensity:         "low",
		BloodGlucoseAfter: intPtr(130),
	}
	second := model.ActivityEntry{
		ID:          model.NewID(),
		Date:        time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local),
		Type:        "running",
		DurationMin: 30,
		Intensity:   "high",
	}
	if err := journal.InsertActivity(sqldb, first); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if err := journal.InsertActivity(sqldb, second); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	log, err := journal.LoadActivityLog(sqldb)
	if err != nil {
		t.Fatalf("load activity log: %v", err)
	}
	all := log.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest-first order after reload")
	}
	if all[1].BloodGlucoseAfter == nil || *all[1].BloodGlucoseAfter != 130 {
		t.Fatalf("expected glucose reading to survive round trip, got %+v", all[1])
	}
	if all[0].BloodGlucoseAfter != nil {
		t.Fatalf("expected absent reading to stay nil")
	}
	if !all[1].Date.Equal(first.Date) {
		t.Fatalf("expected date %v, got %v", first.Date, all[1].Date)
	}
}

func TestFoodUpdateAndDelete(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	insulin := 2.5
	entry := model.FoodEntry{
		ID:          model.NewID(),
		Date:        time.Date(2026, 3, 10, 13, 0, 0, 0, time.Local),
		MealType:    "lunch",
		FoodName:    "Chicken and rice",
		CarbsG:      50,
		ProteinG:    20,
		FatG:        10,
		InsulinDose: &insulin,
	}
	if err := journal.InsertFood(sqldb, entry); err != nil {
		t.Fatalf("insert food: %v", err)
	}

	entry.FoodName = "Chicken, rice and beans"
	entry.CarbsG = 60
	if err := journal.UpdateFood(sqldb, entry); err != nil {
		t.Fatalf("update food: %v", err)
	}

	log, err := journal.LoadFoodLog(sqldb)
	if err != nil {
		t.Fatalf("load food log: %v", err)
	}
	got, ok := log.Get(entry.ID)
	if !ok {
		t.Fatalf("expected updated entry present")
	}
	if got.FoodName != "Chicken, rice and beans" || got.CarbsG != 60 {
		t.Fatalf("unexpected entry after update: %+v", got)
	}
	if got.InsulinDose == nil || *got.InsulinDose != 2.5 {
		t.Fatalf("expected insulin dose 2.5, got %+v", got.InsulinDose)
	}

	if err := journal.DeleteFood(sqldb, entry.ID); err != nil {
		t.Fatalf("delete food: %v", err)
	}
	if err := journal.DeleteFood(sqldb, entry.ID); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	log, err = journal.LoadFoodLog(sqldb)
	if err != nil {
		t.Fatalf("reload food log: %v", err)
	}
	if log.Len() != 0 {
		t.Fatalf("expected empty log after delete, got %d", log.Len())
	}
}

func TestSleepRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	entry := model.SleepEntry{
		ID:                 model.NewID(),
		Date:               time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local),
		BedTime:            time.Date(2026, 3, 9, 23, 0, 0, 0, time.Local),
		WakeTime:           time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local),
		Quality:            4,
		BloodGlucoseWaking: intPtr(120),
		Notes:              "slept well",
	}
	if err := journal.InsertSleep(sqldb, entry); err != nil {
		t.Fatalf("insert sleep: %v", err)
	}

	log, err := journal.LoadSleepLog(sqldb)
	if err != nil {
		t.Fatalf("load sleep log: %v", err)
	}
	got, ok := log.Get(entry.ID)
	if !ok {
		t.Fatalf("expected sleep entry present")
	}
	if got.Hours() != 8.0 {
		t.Fatalf("expected derived 8.0 hours, got %.2f", got.Hours())
	}
	if got.Notes != "slept well" || got.Quality != 4 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}
