package store

import (
	"testing"

	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/progress"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleState() PersistedState {
	return PersistedState{
		DailyStats: []stats.DailyStat{
			{Date: "2026-03-01", MinutesStudied: 15, QuestionsAnswered: 6},
			{Date: "2026-03-02", MinutesStudied: 30, QuestionsAnswered: 12},
		},
		TopicProgress: []progress.TopicProgress{
			{TopicID: "g1", Completed: true, Score: 8},
		},
		WrongQuestions: []quiz.WrongQuestion{
			{
				Question: content.Question{
					ID: "q2", TopicID: "g1", CategoryID: "grammar",
					Text:    "Choose the correct article",
					Options: []string{"el", "la", "los"}, CorrectAnswerID: "1",
				},
				CategoryID: "grammar",
			},
			{
				Question:   content.Question{ID: "q9", CategoryID: "vocab", ReadingTextID: "rt-2"},
				CategoryID: "vocab",
			},
		},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveState(sampleState()); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if len(got.DailyStats) != 2 || got.DailyStats[0].MinutesStudied != 15 {
		t.Errorf("daily stats = %+v", got.DailyStats)
	}
	if len(got.TopicProgress) != 1 || !got.TopicProgress[0].Completed {
		t.Errorf("topic progress = %+v", got.TopicProgress)
	}
	if len(got.WrongQuestions) != 2 {
		t.Fatalf("wrong questions = %d, want 2", len(got.WrongQuestions))
	}
	// Insertion order survives the round trip.
	if got.WrongQuestions[0].Question.ID != "q2" || got.WrongQuestions[1].Question.ID != "q9" {
		t.Errorf("wrong question order: %s, %s",
			got.WrongQuestions[0].Question.ID, got.WrongQuestions[1].Question.ID)
	}
	// The question snapshot survives intact, including variant fields.
	if got.WrongQuestions[1].Question.Kind() != content.KindReadingLinked {
		t.Error("reading-linked variant lost in round trip")
	}
	if got.WrongQuestions[0].Question.Options[1] != "la" {
		t.Errorf("options = %v", got.WrongQuestions[0].Question.Options)
	}
}

func TestSaveStateReplaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveState(sampleState()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	replacement := PersistedState{
		DailyStats: []stats.DailyStat{{Date: "2026-04-01", MinutesStudied: 5}},
	}
	if err := s.SaveState(replacement); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(got.DailyStats) != 1 || got.DailyStats[0].Date != "2026-04-01" {
		t.Errorf("daily stats after replace = %+v", got.DailyStats)
	}
	if len(got.TopicProgress) != 0 || len(got.WrongQuestions) != 0 {
		t.Error("old rows survived a replacing save")
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveState(sampleState()); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(got.DailyStats)+len(got.TopicProgress)+len(got.WrongQuestions) != 0 {
		t.Errorf("state after reset = %+v", got)
	}
}

func TestLoadStateEmptyDatabase(t *testing.T) {
	s := openTestStore(t)
	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState on fresh db: %v", err)
	}
	if len(got.DailyStats) != 0 {
		t.Errorf("fresh db returned %+v", got)
	}
}
