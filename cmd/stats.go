package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		agg := a.Stats
		goals := agg.Goals()

		fmt.Println("This week")
		for _, d := range agg.CurrentWeek() {
			bar := strings.Repeat("█", d.Minutes/5)
			fmt.Printf("  %s  %4d min  %s\n", d.Label, d.Minutes, bar)
		}

		fmt.Println("\nLast five weeks")
		for _, w := range agg.LastFiveWeeks() {
			fmt.Printf("  %-6s  %4d min\n", w.Label, w.Minutes)
		}

		fmt.Printf("\nWeekly goal   %d/%d min (%.0f%%)\n",
			agg.CurrentWeekTotal(), goals.WeeklyMinutes, agg.WeeklyGoalProgress())
		fmt.Printf("Monthly goal  %d/%d min (%.0f%%)\n",
			agg.CurrentMonthTotal(), goals.MonthlyMinutes, agg.MonthlyGoalProgress())
		fmt.Printf("Total         %d min\n", agg.TotalMinutes())
		return nil
	},
}
