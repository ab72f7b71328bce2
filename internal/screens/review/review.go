package review

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/router"
	"github.com/lingoapp/lingo/internal/ui/layout"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

// ReviewScreen lists the wrong answers captured across quiz attempts,
// grouped by category, with the correct answer revealed per entry.
type ReviewScreen struct {
	app    *app.App
	cursor int
}

var _ router.Screen = (*ReviewScreen)(nil)

// New creates the review screen.
func New(a *app.App) *ReviewScreen {
	return &ReviewScreen{app: a}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	records := r.app.Machine.Wrong().Records()

	switch kmsg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(records)-1 {
			r.cursor++
		}
	case "c":
		r.app.Machine.ClearWrongQuestions()
		r.cursor = 0
		if err := r.app.Bridge.Persist(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not persist state: %v\n", err)
		}
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	records := r.app.Machine.Wrong().Records()

	if len(records) == 0 {
		empty := theme.Subtitle.Width(width).Render("Nothing to review — keep practicing!")
		return lipgloss.NewStyle().Width(width).Height(height).Render("\n\n" + empty)
	}

	var b strings.Builder
	b.WriteString("  " + theme.Subtitle.Render(fmt.Sprintf("%d question(s) you missed", len(records))) + "\n\n")

	lastCategory := ""
	for i, rec := range records {
		if rec.CategoryID != lastCategory {
			b.WriteString("  " + theme.Body.Bold(true).Render(strings.ToUpper(rec.CategoryID)) + "\n")
			lastCategory = rec.CategoryID
		}
		b.WriteString(r.renderRecord(i, rec))
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (r *ReviewScreen) renderRecord(i int, rec quiz.WrongQuestion) string {
	cursor := "    "
	textStyle := theme.Body
	if i == r.cursor {
		cursor = "  ▸ "
		textStyle = theme.Selected
	}

	out := cursor + textStyle.Render(rec.Question.Text) + "\n"

	// The correct answer expands only under the cursor.
	if i == r.cursor {
		if idx := rec.Question.CorrectIndex(); idx >= 0 {
			out += "      " + theme.Correct.Render("✓ "+rec.Question.Options[idx]) + "\n"
		}
	}
	return out
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

// KeyHints implements router.KeyHintProvider.
func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if r.app.Machine.Wrong().Len() > 0 {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Clear all"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
