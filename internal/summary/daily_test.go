package summary_test

import (
	"testing"
	"time"

	"github.com/varsha/glucolog/internal/model"
	"github.com/varsha/glucolog/internal/store"
	"github.com/varsha/glucolog/internal/summary"
)

func intPtr(v int) *int { return &v }

func newLogs() (*store.Log[model.ActivityEntry], *store.Log[model.FoodEntry], *store.Log[model.SleepEntry]) {
	return store.New[model.ActivityEntry](), store.New[model.FoodEntry](), store.New[model.SleepEntry]()
}

func TestSummarizeCombinesAllThreeLogs(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	activities.Insert(model.ActivityEntry{
		ID:                model.NewID(),
		Date:              time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local),
		Type:              "running",
		DurationMin:       30,
		Intensity:         "high",
		BloodGlucoseAfter: intPtr(140),
	})
	foods.Insert(model.FoodEntry{
		ID:                model.NewID(),
		Date:              time.Date(2026, 3, 10, 13, 0, 0, 0, time.Local),
		MealType:          "lunch",
		FoodName:          "Chicken and rice",
		CarbsG:            50,
		ProteinG:          20,
		FatG:              10,
		BloodGlucoseAfter: intPtr(160),
	})
	sleeps.Insert(model.SleepEntry{
		ID:                 model.NewID(),
		Date:               time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local),
		BedTime:            time.Date(2026, 3, 9, 23, 0, 0, 0, time.Local),
		WakeTime:           time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local),
		Quality:            4,
		BloodGlucoseWaking: intPtr(120),
	})

	rollup := summary.Summarize(day, activities, foods, sleeps)

	if rollup.ActivityMinutes != 30 {
		t.Fatalf("expected 30 activity minutes, got %d", rollup.ActivityMinutes)
	}
	if rollup.Calories != 370 { // 50*4 + 20*4 + 10*9
		t.Fatalf("expected 370 calories, got %d", rollup.Calories)
	}
	if rollup.SleepHours != 8.0 {
		t.Fatalf("expected 8.0 sleep hours, got %.2f", rollup.SleepHours)
	}
	if !rollup.Glucose.OK || rollup.Glucose.MgDL != 140 { // (140+160+120)/3
		t.Fatalf("expected glucose average 140, got %+v", rollup.Glucose)
	}
}

func TestSummarizeEmptyDay(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()

	rollup := summary.Summarize(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), activities, foods, sleeps)

	if rollup.ActivityMinutes != 0 || rollup.Calories != 0 || rollup.SleepHours != 0 {
		t.Fatalf("expected zero totals, got %+v", rollup)
	}
	if rollup.Glucose.OK {
		t.Fatalf("expected no glucose reading, got %+v", rollup.Glucose)
	}
}

func TestSummarizeFiltersByCalendarDay(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()

	activities.Insert(model.ActivityEntry{
		ID:          model.NewID(),
		Date:        time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local),
		Type:        "walking",
		DurationMin: 20,
	})
	activities.Insert(model.ActivityEntry{
		ID:          model.NewID(),
		Date:        time.Date(2026, 3, 10, 0, 1, 0, 0, time.Local),
		Type:        "walking",
		DurationMin: 45,
	})

	rollup := summary.Summarize(time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local), activities, foods, sleeps)
	if rollup.ActivityMinutes != 45 {
		t.Fatalf("expected only same-day entry counted, got %d minutes", rollup.ActivityMinutes)
	}
}

func TestSummarizeSleepHoursAddAcrossNaps(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()
	day := time.Date(2026, 3, 10, 20, 0, 0, 0, time.Local)

	sleeps.Insert(model.SleepEntry{
		ID:       model.NewID(),
		Date:     day,
		BedTime:  time.Date(2026, 3, 9, 23, 0, 0, 0, time.Local),
		WakeTime: time.Date(2026, 3, 10, 6, 0, 0, 0, time.Local),
		Quality:  3,
	})
	sleeps.Insert(model.SleepEntry{
		ID:       model.NewID(),
		Date:     day,
		BedTime:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local),
		WakeTime: time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local),
		Quality:  4,
	})

	rollup := summary.Summarize(day, activities, foods, sleeps)
	if rollup.SleepHours != 8.5 {
		t.Fatalf("expected naps to add to 8.5 hours, got %.2f", rollup.SleepHours)
	}
}

func TestSummarizeGlucoseMeanTruncatesTowardZero(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	activities.Insert(model.ActivityEntry{
		ID: model.NewID(), Date: day, Type: "yoga", DurationMin: 10,
		BloodGlucoseAfter: intPtr(100),
	})
	activities.Insert(model.ActivityEntry{
		ID: model.NewID(), Date: day, Type: "yoga", DurationMin: 10,
		BloodGlucoseAfter: intPtr(101),
	})

	rollup := summary.Summarize(day, activities, foods, sleeps)
	if rollup.Glucose.MgDL != 100 { // 100.5 truncates
		t.Fatalf("expected truncated mean 100, got %d", rollup.Glucose.MgDL)
	}
}

func TestSummarizePassesImplausibleGlucoseThrough(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	// No physiological bounds are enforced on readings.
	activities.Insert(model.ActivityEntry{
		ID: model.NewID(), Date: day, Type: "yoga", DurationMin: 10,
		BloodGlucoseAfter: intPtr(0),
	})
	activities.Insert(model.ActivityEntry{
		ID: model.NewID(), Date: day, Type: "yoga", DurationMin: 10,
		BloodGlucoseAfter: intPtr(900),
	})

	rollup := summary.Summarize(day, activities, foods, sleeps)
	if !rollup.Glucose.OK || rollup.Glucose.MgDL != 450 {
		t.Fatalf("expected mean 450 of raw readings, got %+v", rollup.Glucose)
	}
}

func TestSummarizeNegativeSleepDurationUnguarded(t *testing.T) {
	t.Parallel()
	activities, foods, sleeps := newLogs()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	sleeps.Insert(model.SleepEntry{
		ID:       model.NewID(),
		Date:     day,
		BedTime:  time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local),
		WakeTime: time.Date(2026, 3, 10, 5, 0, 0, 0, time.Local),
		Quality:  1,
	})

	rollup := summary.Summarize(day, activities, foods, sleeps)
	if rollup.SleepHours != -2.0 {
		t.Fatalf("expected raw -2.0 hours, got %.2f", rollup.SleepHours)
	}
}
