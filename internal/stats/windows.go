package stats

import "time"

// DayBucket is one day of the current-week view.
type DayBucket struct {
	Date    time.Time
	Label   string // short weekday name, "Mon".."Sun"
	Minutes int
}

// WeekBucket is one weekly total of the five-week view.
type WeekBucket struct {
	Start   time.Time
	Label   string // week identifier, e.g. "Mar 2"
	Minutes int
}

// weekStart returns local midnight of the Monday on or before t.
func weekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}

// CurrentWeek produces seven ordered day buckets for the current calendar
// week, Monday first. Days without a record carry zero minutes.
func (a *Aggregator) CurrentWeek() []DayBucket {
	start := weekStart(a.now())
	out := make([]DayBucket, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		out[i] = DayBucket{
			Date:    day,
			Label:   day.Format("Mon"),
			Minutes: a.MinutesOn(day),
		}
	}
	return out
}

// LastFiveWeeks produces five ordered weekly totals ending with the current
// week, oldest first.
func (a *Aggregator) LastFiveWeeks() []WeekBucket {
	current := weekStart(a.now())
	out := make([]WeekBucket, 5)
	for i := 0; i < 5; i++ {
		start := current.AddDate(0, 0, -7*(4-i))
		total := 0
		for d := 0; d < 7; d++ {
			total += a.MinutesOn(start.AddDate(0, 0, d))
		}
		out[i] = WeekBucket{
			Start:   start,
			Label:   start.Format("Jan 2"),
			Minutes: total,
		}
	}
	return out
}

// CurrentWeekTotal sums the daily minutes inside the current calendar week.
func (a *Aggregator) CurrentWeekTotal() int {
	total := 0
	for _, b := range a.CurrentWeek() {
		total += b.Minutes
	}
	return total
}

// CurrentMonthTotal sums the daily minutes inside the current calendar month.
func (a *Aggregator) CurrentMonthTotal() int {
	now := a.now()
	prefix := now.Format("2006-01")
	total := 0
	for _, d := range a.Snapshot() {
		if len(d.Date) >= len(prefix) && d.Date[:len(prefix)] == prefix {
			total += d.MinutesStudied
		}
	}
	return total
}

// WeeklyGoalProgress returns the percentage of the weekly minutes goal
// reached so far. May exceed 100.
func (a *Aggregator) WeeklyGoalProgress() float64 {
	return goalPercent(a.CurrentWeekTotal(), a.goals.WeeklyMinutes)
}

// MonthlyGoalProgress returns the percentage of the monthly minutes goal
// reached so far. May exceed 100.
func (a *Aggregator) MonthlyGoalProgress() float64 {
	return goalPercent(a.CurrentMonthTotal(), a.goals.MonthlyMinutes)
}

func goalPercent(total, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(total) / float64(goal) * 100
}
