// Package tui hosts the root Bubble Tea model: window sizing, the
// screen router and the header/footer chrome around the active screen.
package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/router"
	"github.com/lingoapp/lingo/internal/screens/home"
	"github.com/lingoapp/lingo/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	app    *app.App
	router *router.Router
	width  int
	height int
}

func newModel(a *app.App) Model {
	return Model{
		app:    a,
		router: router.New(home.New(a)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if handler, ok := m.router.Active().(router.EscHandler); ok {
				return m, handler.HandleEsc()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// A screen may take over the whole frame, e.g. while a reading
	// passage is on display.
	hideChrome := false
	if hider, ok := active.(router.ChromeHider); ok {
		hideChrome = hider.HideChrome()
	}

	var header, footer string
	if !hideChrome {
		title := ""
		if active != nil {
			title = active.Title()
		}
		header = layout.RenderHeader(title, m.app.TodayMinutes(), int(m.app.Stats.WeeklyGoalProgress()), m.width)
		footer = layout.RenderFooter(m.footerHints(active), m.width)
	}

	contentHeight := m.height
	if !hideChrome {
		contentHeight = m.height - lipgloss.Height(header) - lipgloss.Height(footer)
		if contentHeight < 0 {
			contentHeight = 0
		}
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) footerHints(active router.Screen) []layout.KeyHint {
	if provider, ok := active.(router.KeyHintProvider); ok {
		return provider.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program over an already-constructed App.
func Run(a *app.App) error {
	p := tea.NewProgram(newModel(a))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
