package progress

import (
	"testing"

	"github.com/lingoapp/lingo/internal/content"
)

func refTopics() []content.Topic {
	return []content.Topic{
		{ID: "g1", CategoryID: "grammar", LevelID: content.LevelBeginner, Order: 1},
		{ID: "g2", CategoryID: "grammar", LevelID: content.LevelBeginner, Order: 2},
		{ID: "g3", CategoryID: "grammar", LevelID: content.LevelBeginner, Order: 3},
		{ID: "v1", CategoryID: "vocab", LevelID: content.LevelBeginner, Order: 1},
		{ID: "v2", CategoryID: "vocab", LevelID: content.LevelElementary, Order: 2},
	}
}

func TestComputeCategoryProgress(t *testing.T) {
	topics := refTopics()
	tr := NewTracker()

	cp := ComputeCategoryProgress(topics, tr, "grammar")
	if cp.Percentage != 0 {
		t.Errorf("empty tracker: %d%%, want 0", cp.Percentage)
	}

	tr.RecordCompletion("g1", 10)
	cp = ComputeCategoryProgress(topics, tr, "grammar")
	if cp.Percentage != 33 {
		t.Errorf("1/3 complete: %d%%, want 33", cp.Percentage)
	}

	tr.RecordCompletion("g2", 10)
	cp = ComputeCategoryProgress(topics, tr, "grammar")
	if cp.Percentage != 67 {
		t.Errorf("2/3 complete: %d%%, want 67", cp.Percentage)
	}
}

func TestCategoryProgressNeverDecreases(t *testing.T) {
	topics := refTopics()
	tr := NewTracker()
	prev := 0
	for _, id := range []string{"g2", "g1", "g2", "g3"} {
		tr.RecordCompletion(id, 1)
		cp := ComputeCategoryProgress(topics, tr, "grammar")
		if cp.Percentage < prev {
			t.Fatalf("percentage decreased: %d -> %d after %s", prev, cp.Percentage, id)
		}
		prev = cp.Percentage
	}
	if prev != 100 {
		t.Errorf("final percentage = %d, want 100", prev)
	}
}

func TestComputeCategoryProgressMissingCategory(t *testing.T) {
	cp := ComputeCategoryProgress(refTopics(), NewTracker(), "listening")
	if cp.Percentage != 0 {
		t.Errorf("unknown category: %d%%, want 0", cp.Percentage)
	}
	cp = ComputeCategoryProgress(nil, NewTracker(), "grammar")
	if cp.Percentage != 0 {
		t.Errorf("no reference data: %d%%, want 0", cp.Percentage)
	}
}

func TestComputeLevelProgress(t *testing.T) {
	topics := refTopics()
	tr := NewTracker()
	tr.RecordCompletion("g1", 1)
	tr.RecordCompletion("v1", 1)

	lp := ComputeLevelProgress(topics, tr, content.LevelBeginner)
	if lp.TotalTopics != 4 || lp.CompletedTopics != 2 || lp.Percentage != 50 {
		t.Errorf("LevelProgress = %+v, want 2/4 = 50%%", lp)
	}

	lp = ComputeLevelProgress(topics, tr, content.LevelAdvanced)
	if lp.TotalTopics != 0 || lp.Percentage != 0 {
		t.Errorf("empty level: %+v", lp)
	}
}

func TestUnlockedTopicsPrefixRule(t *testing.T) {
	topics := refTopics()
	tr := NewTracker()

	// Zero completions: only the first topic by order.
	got := UnlockedTopics(topics, tr, "grammar")
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("unlocked with no completions = %v", topicIDs(got))
	}

	// g2 completed but g1 not: g2's completion does not skip the gate.
	tr = NewTracker()
	tr.RecordCompletion("g2", 1)
	got = UnlockedTopics(topics, tr, "grammar")
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("g2-only completion unlocked %v, want [g1]", topicIDs(got))
	}

	// Sequential completion exposes exactly one new topic at a time.
	tr.RecordCompletion("g1", 1)
	got = UnlockedTopics(topics, tr, "grammar")
	if len(got) != 3 {
		t.Fatalf("unlocked = %v, want all three (g1,g2 complete, g3 reachable)", topicIDs(got))
	}
	for i, want := range []string{"g1", "g2", "g3"} {
		if got[i].ID != want {
			t.Errorf("unlocked[%d] = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestUnlockedTopicsEmptyInputs(t *testing.T) {
	if got := UnlockedTopics(nil, NewTracker(), "grammar"); got != nil {
		t.Errorf("no reference data: %v, want empty", got)
	}
	if got := UnlockedTopics(refTopics(), NewTracker(), "missing"); got != nil {
		t.Errorf("unknown category: %v, want empty", got)
	}
}

func topicIDs(topics []content.Topic) []string {
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}
