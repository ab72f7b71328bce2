// Package bridge reconciles locally aggregated statistics and progress with
// the backend at login/logout, and persists them across app restarts. The
// pure state cores (quiz, progress, stats) never touch the network; this is
// the only adapter that does.
package bridge

import (
	"context"
	"fmt"

	"github.com/lingoapp/lingo/internal/backend"
	"github.com/lingoapp/lingo/internal/progress"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/stats"
	"github.com/lingoapp/lingo/internal/store"
)

// Remote is the slice of the backend client the bridge needs.
type Remote interface {
	FetchStatistics(ctx context.Context) (*backend.UserStatistics, error)
	PushStatistics(ctx context.Context, stats backend.UserStatistics) error
}

// Local is the durable on-device store.
type Local interface {
	SaveState(state store.PersistedState) error
	LoadState() (store.PersistedState, error)
}

// Bridge wires the domain state to its durable and remote homes.
type Bridge struct {
	remote  Remote
	local   Local
	tracker *progress.Tracker
	stats   *stats.Aggregator
	wrong   *quiz.WrongSet
}

// New creates a Bridge. remote may be nil for offline use; Pull and Push
// then fail with an error while local persistence keeps working.
func New(remote Remote, local Local, tracker *progress.Tracker, agg *stats.Aggregator, wrong *quiz.WrongSet) *Bridge {
	return &Bridge{
		remote:  remote,
		local:   local,
		tracker: tracker,
		stats:   agg,
		wrong:   wrong,
	}
}

// Rehydrate loads the durable state into the domain objects at launch.
// It runs before any login pull, which may then overwrite the result.
func (b *Bridge) Rehydrate() error {
	state, err := b.local.LoadState()
	if err != nil {
		return fmt.Errorf("load local state: %w", err)
	}
	b.stats.Load(state.DailyStats)
	b.tracker.Load(state.TopicProgress)
	b.wrong.Load(state.WrongQuestions)
	return nil
}

// Persist writes the current domain state to the local store.
func (b *Bridge) Persist() error {
	state := store.PersistedState{
		DailyStats:     b.stats.Snapshot(),
		TopicProgress:  b.tracker.Snapshot(),
		WrongQuestions: b.wrong.Records(),
	}
	if err := b.local.SaveState(state); err != nil {
		return fmt.Errorf("save local state: %w", err)
	}
	return nil
}

// Pull fetches the server's statistics and replaces local state with them.
// Server wins at login; there is no merge. A failed fetch leaves local
// state untouched.
func (b *Bridge) Pull(ctx context.Context) error {
	if b.remote == nil {
		return fmt.Errorf("pull statistics: %w", backend.ErrNotConfigured)
	}

	remote, err := b.remote.FetchStatistics(ctx)
	if err != nil {
		return fmt.Errorf("pull statistics: %w", err)
	}

	daily := make([]stats.DailyStat, 0, len(remote.DailyQuizTimes))
	for _, d := range remote.DailyQuizTimes {
		daily = append(daily, stats.DailyStat{
			Date:              d.Date,
			MinutesStudied:    d.Minutes,
			QuestionsAnswered: d.QuestionsAnswered,
		})
	}
	b.stats.Load(daily)
	b.tracker.LoadCompletedIDs(remote.CompletedTopics)

	return b.Persist()
}

// Push uploads the full local aggregate as a replacement, the logout-time
// sync point. A failed push leaves both sides as they were; the next
// login/logout boundary retries.
func (b *Bridge) Push(ctx context.Context) error {
	if b.remote == nil {
		return fmt.Errorf("push statistics: %w", backend.ErrNotConfigured)
	}

	if err := b.remote.PushStatistics(ctx, b.Aggregate()); err != nil {
		return fmt.Errorf("push statistics: %w", err)
	}
	return nil
}

// Aggregate assembles the statistics payload from the domain state.
func (b *Bridge) Aggregate() backend.UserStatistics {
	snapshot := b.stats.Snapshot()
	daily := make([]backend.DailyQuizTime, 0, len(snapshot))
	for _, d := range snapshot {
		daily = append(daily, backend.DailyQuizTime{
			Date:              d.Date,
			Minutes:           d.MinutesStudied,
			QuestionsAnswered: d.QuestionsAnswered,
		})
	}
	return backend.UserStatistics{
		TotalQuizMinutes: b.stats.TotalMinutes(),
		DailyQuizTimes:   daily,
		CompletedTopics:  b.tracker.CompletedTopicIDs(),
	}
}
