package progress

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/progress"
	"github.com/lingoapp/lingo/internal/router"
	quizscreen "github.com/lingoapp/lingo/internal/screens/quiz"
	"github.com/lingoapp/lingo/internal/ui/components"
	"github.com/lingoapp/lingo/internal/ui/layout"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

type phase int

const (
	phaseCategories phase = iota
	phaseTopics
)

// ProgressScreen is the practice picker: categories with completion
// bars, then the topics of one category with their unlock state.
type ProgressScreen struct {
	app      *app.App
	phase    phase
	cursor   int
	category content.Category
}

var _ router.Screen = (*ProgressScreen)(nil)

// New creates the practice picker at the category list.
func New(a *app.App) *ProgressScreen {
	return &ProgressScreen{app: a}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch p.phase {
	case phaseCategories:
		return p.updateCategories(kmsg)
	case phaseTopics:
		return p.updateTopics(kmsg)
	}
	return p, nil
}

func (p *ProgressScreen) updateCategories(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	categories := p.app.Catalog.Categories

	switch kmsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(categories)-1 {
			p.cursor++
		}
	case "enter":
		if p.cursor < len(categories) {
			p.category = categories[p.cursor]
			p.phase = phaseTopics
			p.cursor = 0
		}
	}
	return p, nil
}

func (p *ProgressScreen) updateTopics(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	topics := p.orderedTopics()
	unlocked := p.unlockedSet()

	switch kmsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(topics)-1 {
			p.cursor++
		}
	case "left", "h":
		p.phase = phaseCategories
		p.cursor = 0
	case "enter":
		if p.cursor >= len(topics) {
			return p, nil
		}
		topic := topics[p.cursor]
		if !unlocked[topic.ID] {
			return p, nil
		}
		if len(p.app.Catalog.QuestionsForTopic(topic.ID)) == 0 {
			return p, nil
		}
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizscreen.New(p.app, topic)}
		}
	}
	return p, nil
}

// orderedTopics returns the selected category's topics in serving order.
func (p *ProgressScreen) orderedTopics() []content.Topic {
	topics := p.app.Catalog.TopicsForCategory(p.category.ID)
	sort.Slice(topics, func(i, j int) bool { return topics[i].Order < topics[j].Order })
	return topics
}

func (p *ProgressScreen) unlockedSet() map[string]bool {
	out := make(map[string]bool)
	for _, t := range progress.UnlockedTopics(p.app.Catalog.Topics, p.app.Tracker, p.category.ID) {
		out[t.ID] = true
	}
	return out
}

func (p *ProgressScreen) View(width, height int) string {
	var b strings.Builder

	lp := progress.ComputeLevelProgress(p.app.Catalog.Topics, p.app.Tracker, p.app.Level)
	b.WriteString("  " + theme.Body.Bold(true).Render(p.app.Level.DisplayName()) + "\n")
	b.WriteString("  " + components.NewProgressBar(
		fmt.Sprintf("%d/%d topics", lp.CompletedTopics, lp.TotalTopics),
		float64(lp.Percentage)/100, true, width-8).View() + "\n\n")

	switch p.phase {
	case phaseCategories:
		b.WriteString(p.viewCategories(width))
	case phaseTopics:
		b.WriteString(p.viewTopics(width))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (p *ProgressScreen) viewCategories(width int) string {
	var b strings.Builder
	b.WriteString("  " + theme.Subtitle.Render("Pick a category") + "\n\n")

	for i, c := range p.app.Catalog.Categories {
		cp := progress.ComputeCategoryProgress(p.app.Catalog.Topics, p.app.Tracker, c.ID)

		cursor := "    "
		nameStyle := theme.Body
		if i == p.cursor {
			cursor = "  ▸ "
			nameStyle = theme.Selected
		}

		b.WriteString(cursor + nameStyle.Render(titleCase(c.ID)) +
			"  " + theme.Hint.Render(c.Description) + "\n")
		b.WriteString("    " + components.NewProgressBar("", float64(cp.Percentage)/100, true, width-12).View() + "\n\n")
	}
	return b.String()
}

func (p *ProgressScreen) viewTopics(width int) string {
	topics := p.orderedTopics()
	unlocked := p.unlockedSet()

	var b strings.Builder
	b.WriteString("  " + theme.Subtitle.Render(titleCase(p.category.ID)+" topics") + "\n\n")

	for i, t := range topics {
		cursor := "    "
		if i == p.cursor {
			cursor = "  ▸ "
		}

		var line string
		switch {
		case p.app.Tracker.IsCompleted(t.ID):
			tp := p.app.Tracker.Get(t.ID)
			line = theme.Correct.Render("✓ "+t.Name) +
				theme.Hint.Render(fmt.Sprintf("  best %d pts", tp.Score))
		case unlocked[t.ID]:
			style := theme.Body
			if i == p.cursor {
				style = theme.Selected
			}
			line = style.Render("▢ " + t.Name)
		default:
			line = theme.Locked.Render("🔒 " + t.Name)
		}
		b.WriteString(cursor + line + "\n")
	}

	if len(topics) == 0 {
		b.WriteString("  " + theme.Hint.Render("No topics here yet.") + "\n")
	}
	return b.String()
}

func (p *ProgressScreen) Title() string {
	return "Practice"
}

// KeyHints implements router.KeyHintProvider.
func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if p.phase == phaseTopics {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Categories"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
