package quiz

import "github.com/lingoapp/lingo/internal/content"

// WrongQuestion is a snapshot of an incorrectly answered question, kept with
// its category so review practice can be grouped per category.
type WrongQuestion struct {
	Question   content.Question
	CategoryID string
}

// WrongSet is an ordered, deduplicated collection of wrong answers.
// A question enters at most once per attempt; the set persists across
// sessions until explicitly cleared.
type WrongSet struct {
	records []WrongQuestion
	seen    map[string]bool
}

// NewWrongSet returns an empty set.
func NewWrongSet() *WrongSet {
	return &WrongSet{seen: make(map[string]bool)}
}

// Add captures a question snapshot, ignoring duplicates by question ID.
func (w *WrongSet) Add(q *content.Question) {
	if q == nil || w.seen[q.ID] {
		return
	}
	w.seen[q.ID] = true
	w.records = append(w.records, WrongQuestion{
		Question:   *q,
		CategoryID: q.CategoryID,
	})
}

// Records returns the captured questions in insertion order.
func (w *WrongSet) Records() []WrongQuestion {
	out := make([]WrongQuestion, len(w.records))
	copy(out, w.records)
	return out
}

// Len returns the number of captured questions.
func (w *WrongSet) Len() int {
	return len(w.records)
}

// Clear empties the set.
func (w *WrongSet) Clear() {
	w.records = nil
	w.seen = make(map[string]bool)
}

// Load replaces the set's contents, deduplicating by question ID.
// Used when rehydrating from the local store.
func (w *WrongSet) Load(records []WrongQuestion) {
	w.Clear()
	for i := range records {
		q := records[i].Question
		w.Add(&q)
	}
}
