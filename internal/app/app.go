package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lingoapp/lingo/internal/backend"
	"github.com/lingoapp/lingo/internal/bridge"
	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/progress"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/stats"
	"github.com/lingoapp/lingo/internal/store"
)

// App bundles the domain state shared by every screen and command:
// the content catalog, the quiz machine, the progress tracker, the
// statistics aggregator and the sync bridge around them.
type App struct {
	Catalog *content.Catalog
	Machine *quiz.Machine
	Tracker *progress.Tracker
	Stats   *stats.Aggregator
	Store   *store.Store
	Client  *backend.Client
	Bridge  *bridge.Bridge
	Level   content.Level

	// LoggedIn tracks whether a session token is active. Sync runs only
	// at the login/logout boundaries, never in the background.
	LoggedIn bool
}

// Options configures App construction.
type Options struct {
	// DBPath overrides the default database location.
	DBPath string

	// Level selects the visible content tier. Default: beginner.
	Level content.Level
}

// New builds the App: opens the local store, rehydrates domain state,
// and wires the backend client when one is configured. A missing or
// unreachable backend is not an error; the app runs offline.
func New(opts Options) (*App, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	level := opts.Level
	if level == "" {
		level = content.LevelBeginner
	}

	a := &App{
		Catalog: content.SeedCatalog(),
		Machine: quiz.NewMachine(),
		Tracker: progress.NewTracker(),
		Stats:   stats.NewAggregator(stats.GoalsFromEnv()),
		Store:   st,
		Level:   level,
	}

	cfg := backend.ConfigFromEnv()
	if cfg.BaseURL != "" {
		client, err := backend.NewClient(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: backend disabled: %v\n", err)
		} else {
			a.Client = client
			a.LoggedIn = cfg.Token != ""
		}
	}

	var remote bridge.Remote
	if a.Client != nil {
		remote = a.Client
	}
	a.Bridge = bridge.New(remote, a.Store, a.Tracker, a.Stats, a.Machine.Wrong())

	if err := a.Bridge.Rehydrate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: starting with fresh state: %v\n", err)
	}

	return a, nil
}

// Close persists domain state and releases the store.
func (a *App) Close() error {
	if err := a.Bridge.Persist(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not persist state: %v\n", err)
	}
	return a.Store.Close()
}

// Online reports whether a backend client is configured.
func (a *App) Online() bool {
	return a.Client != nil
}

// TodayMinutes returns the minutes studied on the current calendar day.
func (a *App) TodayMinutes() int {
	return a.Stats.MinutesOn(time.Now())
}

// SignIn exchanges credentials for a session token, then pulls the
// server's statistics (server wins) and refreshes the content catalog.
// A catalog refresh failure is not fatal; the seed catalog stays.
func (a *App) SignIn(ctx context.Context, email, password string) error {
	if a.Client == nil {
		return backend.ErrNotConfigured
	}

	if _, err := a.Client.Login(ctx, email, password); err != nil {
		return err
	}
	if err := a.Bridge.Pull(ctx); err != nil {
		return err
	}
	a.LoggedIn = true

	if err := a.RefreshCatalog(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: content refresh failed: %v\n", err)
	}
	return nil
}

// SignOut pushes the full local aggregate to the server and drops the
// session. A failed push keeps the session so the learner can retry.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.Bridge.Push(ctx); err != nil {
		return err
	}
	a.LoggedIn = false
	if a.Client != nil {
		a.Client.SetToken("")
	}
	return nil
}

// RefreshCatalog fetches the full content catalog for the current level
// and replaces the in-memory one. On any failure the previous catalog
// stays in place.
func (a *App) RefreshCatalog(ctx context.Context) error {
	if a.Client == nil {
		return backend.ErrNotConfigured
	}

	categories, err := a.Client.CategoriesForLevel(ctx, a.Level)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}
	topics, err := a.Client.TopicsForLevel(ctx, a.Level)
	if err != nil {
		return fmt.Errorf("fetch topics: %w", err)
	}

	fresh := content.NewCatalog()
	fresh.Categories = categories
	fresh.Topics = topics

	for _, t := range topics {
		questions, err := a.Client.QuestionsForTopic(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("fetch questions for %s: %w", t.ID, err)
		}
		fresh.Questions[t.ID] = questions

		readings, err := a.Client.ReadingTextsForTopic(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("fetch reading texts for %s: %w", t.ID, err)
		}
		if len(readings) > 0 {
			fresh.Readings[t.ID] = readings
		}
	}

	a.Catalog = fresh
	return nil
}
