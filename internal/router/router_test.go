package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen is a minimal Screen for router tests.
type stubScreen struct {
	title string
}

func (s *stubScreen) Init() tea.Cmd                        { return nil }
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd)     { return s, nil }
func (s *stubScreen) View(width, height int) string        { return s.title }
func (s *stubScreen) Title() string                        { return s.title }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	r.Push(&stubScreen{title: "quiz"})
	if r.Depth() != 2 || r.Active().Title() != "quiz" {
		t.Errorf("after push: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Errorf("after pop: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("popped the root screen: depth=%d", r.Depth())
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "stats"}})
	if r.Active().Title() != "stats" {
		t.Errorf("PushScreenMsg: active = %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("PopScreenMsg: active = %q", r.Active().Title())
	}
}
