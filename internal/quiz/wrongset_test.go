package quiz

import (
	"testing"

	"github.com/lingoapp/lingo/internal/content"
)

func TestWrongSetLoadDeduplicates(t *testing.T) {
	w := NewWrongSet()
	w.Add(&content.Question{ID: "old", CategoryID: "vocab"})

	w.Load([]WrongQuestion{
		{Question: content.Question{ID: "q1", CategoryID: "grammar"}},
		{Question: content.Question{ID: "q2", CategoryID: "vocab"}},
		{Question: content.Question{ID: "q1", CategoryID: "grammar"}},
	})

	if w.Len() != 2 {
		t.Fatalf("Len = %d, want 2", w.Len())
	}
	recs := w.Records()
	if recs[0].Question.ID != "q1" || recs[1].Question.ID != "q2" {
		t.Errorf("unexpected order: %s, %s", recs[0].Question.ID, recs[1].Question.ID)
	}
}

func TestWrongSetRecordsIsACopy(t *testing.T) {
	w := NewWrongSet()
	w.Add(&content.Question{ID: "q1"})

	recs := w.Records()
	recs[0].Question.ID = "mutated"

	if w.Records()[0].Question.ID != "q1" {
		t.Error("Records() must return a copy, not the backing slice")
	}
}

func TestWrongSetSnapshotIsolation(t *testing.T) {
	q := &content.Question{ID: "q1", Text: "original"}
	w := NewWrongSet()
	w.Add(q)

	// Mutating the source after capture must not affect the snapshot.
	q.Text = "changed"
	if got := w.Records()[0].Question.Text; got != "original" {
		t.Errorf("snapshot text = %q, want original", got)
	}
}
