package progress

import (
	"math"
	"sort"

	"github.com/lingoapp/lingo/internal/content"
)

// CategoryProgress is the derived completion of one category.
type CategoryProgress struct {
	CategoryID string
	Percentage int
}

// LevelProgress is the derived completion of one proficiency level.
type LevelProgress struct {
	Level           content.Level
	CompletedTopics int
	TotalTopics     int
	Percentage      int
}

// ComputeCategoryProgress derives the category's completion percentage from
// the reference topic list and the tracker's records. Unknown categories or
// categories with no topics yield 0%, never an error; reference data arrives
// asynchronously and may not be present yet.
func ComputeCategoryProgress(topics []content.Topic, tracker *Tracker, categoryID string) CategoryProgress {
	cp := CategoryProgress{CategoryID: categoryID}
	total, completed := 0, 0
	for _, t := range topics {
		if t.CategoryID != categoryID {
			continue
		}
		total++
		if tracker.IsCompleted(t.ID) {
			completed++
		}
	}
	if total > 0 {
		cp.Percentage = roundPercent(completed, total)
	}
	return cp
}

// ComputeLevelProgress aggregates completion across every topic of the level.
func ComputeLevelProgress(topics []content.Topic, tracker *Tracker, level content.Level) LevelProgress {
	lp := LevelProgress{Level: level}
	for _, t := range topics {
		if t.LevelID != level {
			continue
		}
		lp.TotalTopics++
		if tracker.IsCompleted(t.ID) {
			lp.CompletedTopics++
		}
	}
	if lp.TotalTopics > 0 {
		lp.Percentage = roundPercent(lp.CompletedTopics, lp.TotalTopics)
	}
	return lp
}

// UnlockedTopics returns the category's topics in serving order, cut to the
// unlocked prefix: every completed topic plus exactly the first not-yet-
// completed one. The first topic by order is always unlocked, so a learner
// with zero completions still sees one topic.
func UnlockedTopics(topics []content.Topic, tracker *Tracker, categoryID string) []content.Topic {
	var ordered []content.Topic
	for _, t := range topics {
		if t.CategoryID == categoryID {
			ordered = append(ordered, t)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	var out []content.Topic
	for _, t := range ordered {
		out = append(out, t)
		if !tracker.IsCompleted(t.ID) {
			break
		}
	}
	return out
}

func roundPercent(completed, total int) int {
	return int(math.Round(float64(completed) / float64(total) * 100))
}
