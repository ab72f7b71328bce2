package bridge

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/lingoapp/lingo/internal/backend"
	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/progress"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/stats"
	"github.com/lingoapp/lingo/internal/store"
)

// fakeRemote implements Remote in memory.
type fakeRemote struct {
	stored  backend.UserStatistics
	pushed  []backend.UserStatistics
	failGet bool
	failPut bool
}

func (f *fakeRemote) FetchStatistics(_ context.Context) (*backend.UserStatistics, error) {
	if f.failGet {
		return nil, errors.New("backend down")
	}
	s := f.stored
	return &s, nil
}

func (f *fakeRemote) PushStatistics(_ context.Context, s backend.UserStatistics) error {
	if f.failPut {
		return errors.New("backend down")
	}
	f.pushed = append(f.pushed, s)
	f.stored = s
	return nil
}

type fixture struct {
	bridge  *Bridge
	remote  *fakeRemote
	local   *store.Store
	tracker *progress.Tracker
	stats   *stats.Aggregator
	wrong   *quiz.WrongSet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	local, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	f := &fixture{
		remote:  &fakeRemote{},
		local:   local,
		tracker: progress.NewTracker(),
		stats:   stats.NewAggregator(stats.DefaultGoals()),
		wrong:   quiz.NewWrongSet(),
	}
	f.bridge = New(f.remote, f.local, f.tracker, f.stats, f.wrong)
	return f
}

func TestPullReplacesLocalState(t *testing.T) {
	f := newFixture(t)

	// Local state that must be wiped by the login pull.
	f.stats.Load([]stats.DailyStat{{Date: "2026-03-01", MinutesStudied: 50}})
	f.tracker.RecordCompletion("local-topic", 5)

	f.remote.stored = backend.UserStatistics{
		TotalQuizMinutes: 200,
		DailyQuizTimes: []backend.DailyQuizTime{
			{Date: "2026-02-01", Minutes: 120, QuestionsAnswered: 40},
			{Date: "2026-02-02", Minutes: 80, QuestionsAnswered: 30},
		},
		CompletedTopics: []string{"g1", "g2"},
	}

	if err := f.bridge.Pull(context.Background()); err != nil {
		t.Fatalf("Pull: %v", err)
	}

	if got := f.stats.TotalMinutes(); got != 200 {
		t.Errorf("TotalMinutes = %d, want exactly the server's 200", got)
	}
	if f.tracker.IsCompleted("local-topic") {
		t.Error("local-only completion survived the pull (merge instead of replace)")
	}
	if !f.tracker.IsCompleted("g1") || !f.tracker.IsCompleted("g2") {
		t.Error("server completions missing after pull")
	}

	// The replacement is also persisted locally.
	persisted, err := f.local.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(persisted.DailyStats) != 2 {
		t.Errorf("persisted daily stats = %d, want 2", len(persisted.DailyStats))
	}
}

func TestPullFailureLeavesLocalUntouched(t *testing.T) {
	f := newFixture(t)
	f.stats.Load([]stats.DailyStat{{Date: "2026-03-01", MinutesStudied: 50}})
	f.tracker.RecordCompletion("t1", 5)
	f.remote.failGet = true

	if err := f.bridge.Pull(context.Background()); err == nil {
		t.Fatal("Pull should fail when the backend is down")
	}
	if f.stats.TotalMinutes() != 50 || !f.tracker.IsCompleted("t1") {
		t.Error("failed pull modified local state")
	}
}

func TestPushSendsFullAggregate(t *testing.T) {
	f := newFixture(t)
	f.stats.Load([]stats.DailyStat{
		{Date: "2026-03-01", MinutesStudied: 15, QuestionsAnswered: 6},
		{Date: "2026-03-02", MinutesStudied: 25, QuestionsAnswered: 9},
	})
	f.tracker.RecordCompletion("g1", 8)
	f.tracker.RecordCompletion("v1", 6)

	if err := f.bridge.Push(context.Background()); err != nil {
		t.Fatalf("Push: %v", err)
	}

	if len(f.remote.pushed) != 1 {
		t.Fatalf("pushed %d payloads, want 1", len(f.remote.pushed))
	}
	got := f.remote.pushed[0]
	if got.TotalQuizMinutes != 40 {
		t.Errorf("TotalQuizMinutes = %d, want 40", got.TotalQuizMinutes)
	}
	if len(got.DailyQuizTimes) != 2 {
		t.Errorf("DailyQuizTimes = %d entries, want 2", len(got.DailyQuizTimes))
	}
	sort.Strings(got.CompletedTopics)
	if len(got.CompletedTopics) != 2 || got.CompletedTopics[0] != "g1" {
		t.Errorf("CompletedTopics = %v", got.CompletedTopics)
	}
}

func TestPushFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.stats.Load([]stats.DailyStat{{Date: "2026-03-01", MinutesStudied: 10}})
	f.remote.failPut = true

	if err := f.bridge.Push(context.Background()); err == nil {
		t.Fatal("Push should surface the failure")
	}
	// Local state remains usable offline.
	if f.stats.TotalMinutes() != 10 {
		t.Error("failed push modified local state")
	}
}

func TestRehydratePersistRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.stats.Load([]stats.DailyStat{{Date: "2026-03-01", MinutesStudied: 30, QuestionsAnswered: 10}})
	f.tracker.RecordCompletion("g1", 9)
	f.wrong.Add(&content.Question{ID: "q1", CategoryID: "grammar", Options: []string{"a", "b"}, CorrectAnswerID: "0"})

	if err := f.bridge.Persist(); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	// Fresh domain objects, same store — simulates an app restart.
	restarted := &fixture{
		remote:  f.remote,
		local:   f.local,
		tracker: progress.NewTracker(),
		stats:   stats.NewAggregator(stats.DefaultGoals()),
		wrong:   quiz.NewWrongSet(),
	}
	restarted.bridge = New(restarted.remote, restarted.local, restarted.tracker, restarted.stats, restarted.wrong)

	if err := restarted.bridge.Rehydrate(); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if restarted.stats.TotalMinutes() != 30 {
		t.Errorf("TotalMinutes after restart = %d, want 30", restarted.stats.TotalMinutes())
	}
	if !restarted.tracker.IsCompleted("g1") {
		t.Error("topic completion lost across restart")
	}
	if restarted.wrong.Len() != 1 {
		t.Errorf("wrong set = %d entries after restart, want 1", restarted.wrong.Len())
	}
}

func TestOfflineBridge(t *testing.T) {
	f := newFixture(t)
	f.bridge = New(nil, f.local, f.tracker, f.stats, f.wrong)

	if err := f.bridge.Pull(context.Background()); !errors.Is(err, backend.ErrNotConfigured) {
		t.Errorf("Pull offline = %v, want ErrNotConfigured", err)
	}
	if err := f.bridge.Push(context.Background()); !errors.Is(err, backend.ErrNotConfigured) {
		t.Errorf("Push offline = %v, want ErrNotConfigured", err)
	}
	// Persistence still works without a remote.
	if err := f.bridge.Persist(); err != nil {
		t.Errorf("Persist offline: %v", err)
	}
}
