package stats

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestUpdateDailyMergesSameDate(t *testing.T) {
	a := NewAggregator(DefaultGoals())
	a.now = fixedClock(time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))

	a.UpdateDaily(10, 5)
	a.UpdateDaily(5, 2)

	snap := a.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("records = %d, want exactly 1 per date", len(snap))
	}
	if snap[0].MinutesStudied != 15 || snap[0].QuestionsAnswered != 7 {
		t.Errorf("record = %+v, want {15, 7}", snap[0])
	}
	if snap[0].Date != "2026-03-04" {
		t.Errorf("date = %q, want 2026-03-04", snap[0].Date)
	}
}

func TestUpdateDailySeparateDates(t *testing.T) {
	a := NewAggregator(DefaultGoals())
	day1 := time.Date(2026, 3, 4, 23, 50, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 5, 0, 10, 0, 0, time.UTC)

	a.now = fixedClock(day1)
	a.UpdateDaily(10, 3)
	a.now = fixedClock(day2)
	a.UpdateDaily(20, 6)

	if got := len(a.Snapshot()); got != 2 {
		t.Fatalf("records = %d, want 2", got)
	}
	if a.TotalMinutes() != 30 {
		t.Errorf("TotalMinutes = %d, want 30", a.TotalMinutes())
	}
}

func TestUpdateDailyClampsNegative(t *testing.T) {
	a := NewAggregator(DefaultGoals())
	a.now = fixedClock(time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
	a.UpdateDaily(-5, -1)
	snap := a.Snapshot()
	if len(snap) != 1 || snap[0].MinutesStudied != 0 {
		t.Errorf("snapshot = %+v, want single zero record", snap)
	}
}

func TestLoadSumsDuplicateDates(t *testing.T) {
	a := NewAggregator(DefaultGoals())
	a.Load([]DailyStat{
		{Date: "2026-03-01", MinutesStudied: 10, QuestionsAnswered: 4},
		{Date: "2026-03-01", MinutesStudied: 5, QuestionsAnswered: 1},
		{Date: "2026-03-02", MinutesStudied: 7},
		{Date: "not-a-date", MinutesStudied: 99},
	})

	snap := a.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("records = %d, want 2 (duplicates merged, junk skipped)", len(snap))
	}
	if snap[0].MinutesStudied != 15 || snap[0].QuestionsAnswered != 5 {
		t.Errorf("merged record = %+v, want {15, 5}", snap[0])
	}
	if a.TotalMinutes() != 22 {
		t.Errorf("TotalMinutes = %d, want 22", a.TotalMinutes())
	}
}

func TestLoadReplacesExistingState(t *testing.T) {
	a := NewAggregator(DefaultGoals())
	a.now = fixedClock(time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
	a.UpdateDaily(50, 10)

	a.Load([]DailyStat{{Date: "2026-01-01", MinutesStudied: 200}})

	if a.TotalMinutes() != 200 {
		t.Errorf("TotalMinutes after load = %d, want 200 (replace, not merge)", a.TotalMinutes())
	}
}
