package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/router"
	"github.com/lingoapp/lingo/internal/screens/login"
	"github.com/lingoapp/lingo/internal/screens/progress"
	"github.com/lingoapp/lingo/internal/screens/review"
	"github.com/lingoapp/lingo/internal/screens/stats"
	"github.com/lingoapp/lingo/internal/ui/components"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	app  *app.App
	menu components.Menu
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(a *app.App) *HomeScreen {
	h := &HomeScreen{app: a}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	a := h.app

	wrongHint := ""
	if n := a.Machine.Wrong().Len(); n > 0 {
		wrongHint = fmt.Sprintf("%d to review", n)
	}

	accountLabel := "SIGN IN"
	if a.LoggedIn {
		accountLabel = "ACCOUNT"
	}

	return []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(a)}
			}
		}},
		{Label: "REVIEW MISTAKES", Hint: wrongHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(a)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(a)}
			}
		}},
		{Label: accountLabel, Disabled: !a.Online(), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(a)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	// Hints and the account label depend on state changed by child
	// screens, so refresh the items while keeping the cursor.
	selected := h.menu.Selected
	h.menu.Items = h.buildItems()
	if selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	a := h.app

	title := theme.Title.Width(width).Render("L I N G O")
	subtitle := theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s · %d topics completed", a.Level.DisplayName(), len(a.Tracker.CompletedTopicIDs())))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	content := "\n\n" + title + "\n" + subtitle + "\n\n\n" + menu

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
