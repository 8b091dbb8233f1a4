// Package summary rolls heterogeneous log entries up into per-day
// statistics and count-bounded series for charting.
package summary

import (
	"time"

	"github.com/varsha/glucolog/internal/model"
	"github.com/varsha/glucolog/internal/store"
)

// GlucoseAverage is the day's mean glucose reading. OK is false when
// no entry carried a reading that day; callers render a placeholder
// instead of 0 mg/dL.
type GlucoseAverage struct {
	MgDL int  `json:"mg_dl"`
	OK   bool `json:"ok"`
}

// DayRollup aggregates one local calendar day across all three logs.
type DayRollup struct {
	Date            string         `json:"date"`
	ActivityMinutes int            `json:"activity_minutes"`
	Calories        int            `json:"calories"`
	SleepHours      float64        `json:"sleep_hours"`
	Glucose         GlucoseAverage `json:"glucose"`
}

// Summarize computes the rollup for the calendar day of date. Sleep
// hours from multiple entries add rather than average, so naps count.
// The glucose mean pools activity after-readings, food after-readings
// and sleep waking readings, truncated toward zero.
func Summarize(date time.Time, activities *store.Log[model.ActivityEntry], foods *store.Log[model.FoodEntry], sleeps *store.Log[model.SleepEntry]) DayRollup {
	rollup := DayRollup{Date: date.Format("2006-01-02")}
	glucose := make([]int, 0)

	for _, e := range activities.All() {
		if !sameDay(e.Date, date) {
			continue
		}
		rollup.ActivityMinutes += e.DurationMin
		if e.BloodGlucoseAfter != nil {
			glucose = append(glucose, *e.BloodGlucoseAfter)
		}
	}
	for _, e := range foods.All() {
		if !sameDay(e.Date, date) {
			continue
		}
		rollup.Calories += e.Calories()
		if e.BloodGlucoseAfter != nil {
			glucose = append(glucose, *e.BloodGlucoseAfter)
		}
	}
	for _, e := range sleeps.All() {
		if !sameDay(e.Date, date) {
			continue
		}
		rollup.SleepHours += e.Hours()
		if e.BloodGlucoseWaking != nil {
			glucose = append(glucose, *e.BloodGlucoseWaking)
		}
	}

	if len(glucose) > 0 {
		sum := 0
		for _, v := range glucose {
			sum += v
		}
		rollup.Glucose = GlucoseAverage{MgDL: sum / len(glucose), OK: true}
	}
	return rollup
}

// sameDay reports whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
