package stats

import (
	"sort"
	"time"
)

// DateLayout is the calendar-day key format for daily records.
const DateLayout = "2006-01-02"

// DailyStat is one calendar day's study record. Day boundaries follow the
// device-local time zone; exactly one record exists per date and repeated
// updates for the same date sum into it.
type DailyStat struct {
	Date              string
	MinutesStudied    int
	QuestionsAnswered int
}

// Aggregator buckets study activity into daily records and derives the
// week/month rollups in windows.go. It holds no clock state beyond an
// injectable now func so window math is testable.
type Aggregator struct {
	days  map[string]*DailyStat
	goals Goals
	now   func() time.Time
}

// NewAggregator returns an empty aggregator with the given goals.
func NewAggregator(goals Goals) *Aggregator {
	return &Aggregator{
		days:  make(map[string]*DailyStat),
		goals: goals,
		now:   time.Now,
	}
}

// UpdateDaily merges a study burst into today's record, creating it on
// first use. Minutes and questions sum; they never overwrite.
func (a *Aggregator) UpdateDaily(minutes, questions int) {
	if minutes < 0 {
		minutes = 0
	}
	if questions < 0 {
		questions = 0
	}
	key := a.now().Format(DateLayout)
	d := a.days[key]
	if d == nil {
		d = &DailyStat{Date: key}
		a.days[key] = d
	}
	d.MinutesStudied += minutes
	d.QuestionsAnswered += questions
}

// MinutesOn returns the minutes recorded for a calendar day, 0 if none.
func (a *Aggregator) MinutesOn(day time.Time) int {
	if d := a.days[day.Format(DateLayout)]; d != nil {
		return d.MinutesStudied
	}
	return 0
}

// TotalMinutes sums every daily record; this is the totalQuizMinutes value
// pushed to the backend.
func (a *Aggregator) TotalMinutes() int {
	total := 0
	for _, d := range a.days {
		total += d.MinutesStudied
	}
	return total
}

// Snapshot exports the daily records ordered by date.
func (a *Aggregator) Snapshot() []DailyStat {
	out := make([]DailyStat, 0, len(a.days))
	for _, d := range a.days {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Load replaces all daily records. Records sharing a date are summed so the
// one-record-per-date invariant holds even against a sloppy source.
func (a *Aggregator) Load(records []DailyStat) {
	a.days = make(map[string]*DailyStat, len(records))
	for _, r := range records {
		if _, err := time.ParseInLocation(DateLayout, r.Date, time.Local); err != nil {
			continue
		}
		d := a.days[r.Date]
		if d == nil {
			d = &DailyStat{Date: r.Date}
			a.days[r.Date] = d
		}
		d.MinutesStudied += r.MinutesStudied
		d.QuestionsAnswered += r.QuestionsAnswered
	}
}

// Goals returns the configured study goals.
func (a *Aggregator) Goals() Goals {
	return a.goals
}
