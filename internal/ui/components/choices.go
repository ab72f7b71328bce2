package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// Choices is the answer list for a quiz question. Once an answer is
// submitted the list locks and reveals the correct option.
type Choices struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Submitted    bool
	ChosenIndex  int
}

// NewChoices creates an answer list for the given options.
func NewChoices(options []string, correctIndex int) Choices {
	return Choices{
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c Choices) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and submission. Input after a
// submission is ignored.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Cursor
	}

	return c, nil
}

// View renders the answer list. After submission the correct option is
// shown in green and a wrong pick in red.
func (c Choices) View() string {
	var s string
	for i, opt := range c.Options {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if c.Submitted {
			switch {
			case i == c.CorrectIndex:
				s += theme.Correct.Render(line+"  ✓") + "\n"
			case i == c.ChosenIndex:
				s += theme.Incorrect.Render(line+"  ✗") + "\n"
			default:
				s += theme.Locked.Render(line) + "\n"
			}
		} else {
			if i == c.Cursor {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}

// IsCorrect returns true if the submitted answer was the correct one.
func (c Choices) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}
