package quiz

import (
	"testing"
	"time"

	"github.com/lingoapp/lingo/internal/content"
)

func newQuestion(id, correct string) *content.Question {
	return &content.Question{
		ID:              id,
		TopicID:         "t1",
		CategoryID:      "grammar",
		Text:            "Pick one",
		Options:         []string{"a", "b", "c", "d"},
		CorrectAnswerID: correct,
	}
}

func TestStartInitializesFreshSession(t *testing.T) {
	m := NewMachine()
	m.Start("t1")

	s := m.Session()
	if s == nil {
		t.Fatal("no session after Start")
	}
	if s.CurrentIndex != 0 || s.Score != 0 {
		t.Errorf("cursor/score = %d/%d, want 0/0", s.CurrentIndex, s.Score)
	}
	if s.Selected != NoSelection {
		t.Errorf("Selected = %d, want NoSelection", s.Selected)
	}
	if s.ShowReading || s.ReadingTextID != "" {
		t.Error("reading interstitial should start cleared")
	}
	if m.State() != StateInProgress {
		t.Errorf("State = %v, want StateInProgress", m.State())
	}
}

func TestStartOverwritesPreviousSession(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	m.UpdateScore(10)
	m.NextQuestion()

	m.Start("t2")
	s := m.Session()
	if s.TopicID != "t2" || s.Score != 0 || s.CurrentIndex != 0 {
		t.Errorf("second Start did not reset session: %+v", s)
	}
}

func TestSelectAnswerFirstSelectionWins(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	q := newQuestion("q1", "2")

	applied, correct := m.SelectAnswer(q, 2)
	if !applied || !correct {
		t.Fatalf("first selection: applied=%v correct=%v, want true/true", applied, correct)
	}

	// A second tap with any index is absorbed.
	applied, _ = m.SelectAnswer(q, 0)
	if applied {
		t.Error("second selection was applied, want no-op")
	}
	if m.Session().Selected != 2 {
		t.Errorf("Selected = %d, want 2 (unchanged)", m.Session().Selected)
	}
	if m.Wrong().Len() != 0 {
		t.Errorf("wrong set = %d entries, want 0", m.Wrong().Len())
	}
}

func TestSelectAnswerCapturesWrongOnce(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	q1 := newQuestion("q1", "0")
	q2 := newQuestion("q2", "1")

	m.SelectAnswer(q1, 3) // wrong
	m.NextQuestion()
	m.SelectAnswer(q2, 0) // wrong
	m.NextQuestion()

	if got := m.Wrong().Len(); got != 2 {
		t.Fatalf("wrong set = %d entries, want 2", got)
	}

	// Same question flagged twice stays a single entry.
	m.Wrong().Add(q1)
	if got := m.Wrong().Len(); got != 2 {
		t.Errorf("wrong set after duplicate = %d, want 2", got)
	}

	recs := m.Wrong().Records()
	if recs[0].Question.ID != "q1" || recs[1].Question.ID != "q2" {
		t.Errorf("records out of order: %s, %s", recs[0].Question.ID, recs[1].Question.ID)
	}
	if recs[0].CategoryID != "grammar" {
		t.Errorf("CategoryID = %q, want grammar", recs[0].CategoryID)
	}
}

func TestSelectAnswerOutOfRangeIgnored(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	q := newQuestion("q1", "0")

	if applied, _ := m.SelectAnswer(q, 9); applied {
		t.Error("out-of-range index was applied")
	}
	if applied, _ := m.SelectAnswer(nil, 0); applied {
		t.Error("nil question was applied")
	}
	if m.Session().Selected != NoSelection {
		t.Error("selection should remain absent")
	}
}

func TestUpdateScoreMonotone(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	m.UpdateScore(5)
	m.UpdateScore(-3)
	m.UpdateScore(0)
	m.UpdateScore(2)
	if got := m.Session().Score; got != 7 {
		t.Errorf("Score = %d, want 7", got)
	}
}

func TestNextQuestionClearsSelectionOnly(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	q := newQuestion("q1", "1")

	m.SetReadingText("rt-1", true)
	m.SelectAnswer(q, 1)
	m.NextQuestion()

	s := m.Session()
	if s.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex)
	}
	if s.Selected != NoSelection {
		t.Error("Selected not reset by NextQuestion")
	}
	if !s.ShowReading || s.ReadingTextID != "rt-1" {
		t.Error("NextQuestion must not touch the reading interstitial")
	}
}

func TestEndPublishesResultAndIsIdempotent(t *testing.T) {
	m := NewMachine()
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	current := base
	m.now = func() time.Time { return current }

	m.Start("t1")
	m.SelectAnswer(newQuestion("q1", "2"), 2)
	m.NextQuestion()
	m.UpdateScore(5)

	current = base.Add(3 * time.Minute)
	res := m.End(10)
	if res == nil {
		t.Fatal("End returned nil for active session")
	}
	if res.Score != 5 || res.TotalQuestions != 10 || res.TopicID != "t1" {
		t.Errorf("Result = %+v", res)
	}
	if res.TimeSpent != 3*time.Minute {
		t.Errorf("TimeSpent = %v, want 3m", res.TimeSpent)
	}
	if m.State() != StateAbsent || m.Session() != nil {
		t.Error("session should be absent after End")
	}

	// Second End has no effect beyond the first.
	if again := m.End(10); again != nil {
		t.Errorf("second End = %+v, want nil", again)
	}
}

func TestOperationsWithoutSessionAreNoOps(t *testing.T) {
	m := NewMachine()
	m.UpdateScore(5)
	m.NextQuestion()
	m.SetReadingText("rt-1", true)
	if applied, _ := m.SelectAnswer(newQuestion("q1", "0"), 0); applied {
		t.Error("SelectAnswer applied without a session")
	}
	if m.State() != StateAbsent {
		t.Error("machine should remain absent")
	}
}

func TestClearWrongQuestions(t *testing.T) {
	m := NewMachine()
	m.Start("t1")
	m.SelectAnswer(newQuestion("q1", "0"), 1)
	m.End(1)

	// Clearing works with no active session.
	m.ClearWrongQuestions()
	if m.Wrong().Len() != 0 {
		t.Errorf("wrong set = %d entries after clear, want 0", m.Wrong().Len())
	}

	// Cleared set accepts the question again on a fresh attempt.
	m.Start("t1")
	m.SelectAnswer(newQuestion("q1", "0"), 1)
	if m.Wrong().Len() != 1 {
		t.Errorf("wrong set = %d entries, want 1", m.Wrong().Len())
	}
}
