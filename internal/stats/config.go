package stats

import (
	"os"
	"strconv"
)

// Goals holds the study time targets used for goal-progress percentages.
type Goals struct {
	WeeklyMinutes  int
	MonthlyMinutes int
}

// DefaultGoals returns the stock targets: 150 minutes per week,
// 600 per month.
func DefaultGoals() Goals {
	return Goals{
		WeeklyMinutes:  150,
		MonthlyMinutes: 600,
	}
}

// GoalsFromEnv builds Goals from environment variables, falling back to
// defaults for unset or malformed values.
func GoalsFromEnv() Goals {
	g := DefaultGoals()
	if v, err := strconv.Atoi(os.Getenv("LINGO_WEEKLY_GOAL_MINUTES")); err == nil && v > 0 {
		g.WeeklyMinutes = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINGO_MONTHLY_GOAL_MINUTES")); err == nil && v > 0 {
		g.MonthlyMinutes = v
	}
	return g
}
