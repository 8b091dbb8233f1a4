package summary_test

import (
	"testing"
	"time"

	"github.com/varsha/glucolog/internal/model"
	"github.com/varsha/glucolog/internal/store"
	"github.com/varsha/glucolog/internal/summary"
)

func seedActivities(n int) *store.Log[model.ActivityEntry] {
	log := store.New[model.ActivityEntry]()
	for i := 0; i < n; i++ {
		log.Insert(model.ActivityEntry{
			ID:          model.NewID(),
			Date:        time.Date(2026, 3, 1+i, 9, 0, 0, 0, time.Local),
			Type:        "walking",
			DurationMin: 10 + i,
		})
	}
	return log
}

func TestRecentBoundsToStoreLength(t *testing.T) {
	t.Parallel()
	log := seedActivities(3)

	got := summary.Recent(log, 7)
	if len(got) != 3 {
		t.Fatalf("expected all 3 entries for n=7, got %d", len(got))
	}
	// Stored order: newest first.
	if got[0].DurationMin != 12 || got[2].DurationMin != 10 {
		t.Fatalf("expected stored order, got %+v", got)
	}
}

func TestRecentTakesWindowFromFront(t *testing.T) {
	t.Parallel()
	log := seedActivities(10)

	got := summary.Recent(log, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(got))
	}
	if got[0].DurationMin != 19 {
		t.Fatalf("expected newest entry first, got %+v", got[0])
	}
}

func TestRecentDegenerateN(t *testing.T) {
	t.Parallel()
	log := seedActivities(3)

	if got := summary.Recent(log, 0); len(got) != 0 {
		t.Fatalf("expected empty window for n=0, got %d", len(got))
	}
	if got := summary.Recent(log, -5); len(got) != 0 {
		t.Fatalf("expected empty window for negative n, got %d", len(got))
	}
}
