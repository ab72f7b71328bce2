package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lingoapp/lingo/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print topic completion per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		lp := progress.ComputeLevelProgress(a.Catalog.Topics, a.Tracker, a.Level)
		fmt.Printf("%s: %d/%d topics (%d%%)\n\n",
			a.Level.DisplayName(), lp.CompletedTopics, lp.TotalTopics, lp.Percentage)

		for _, c := range a.Catalog.Categories {
			cp := progress.ComputeCategoryProgress(a.Catalog.Topics, a.Tracker, c.ID)
			fmt.Printf("%s (%d%%)\n", c.ID, cp.Percentage)

			topics := a.Catalog.TopicsForCategory(c.ID)
			sort.Slice(topics, func(i, j int) bool { return topics[i].Order < topics[j].Order })

			unlocked := make(map[string]bool)
			for _, t := range progress.UnlockedTopics(a.Catalog.Topics, a.Tracker, c.ID) {
				unlocked[t.ID] = true
			}

			for _, t := range topics {
				switch {
				case a.Tracker.IsCompleted(t.ID):
					tp := a.Tracker.Get(t.ID)
					fmt.Printf("  [x] %s (%d pts)\n", t.Name, tp.Score)
				case unlocked[t.ID]:
					fmt.Printf("  [ ] %s\n", t.Name)
				default:
					fmt.Printf("  [-] %s (locked)\n", t.Name)
				}
			}
			fmt.Println()
		}
		return nil
	},
}
