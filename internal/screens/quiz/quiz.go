package quiz

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/router"
	"github.com/lingoapp/lingo/internal/ui/components"
	"github.com/lingoapp/lingo/internal/ui/layout"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

// pointsPerQuestion is the score awarded for each correct answer.
const pointsPerQuestion = 5

type phase int

const (
	phaseReading phase = iota
	phaseQuestion
	phaseSummary
)

// QuizScreen runs one quiz attempt over a topic's question list.
type QuizScreen struct {
	app       *app.App
	topic     content.Topic
	questions []content.Question

	phase    phase
	choices  components.Choices
	answered int
	correct  int

	// readingShown tracks which passages were already displayed, so a
	// passage shared by several questions appears once.
	readingShown map[string]bool

	result *quiz.Result
}

var _ router.Screen = (*QuizScreen)(nil)
var _ router.ChromeHider = (*QuizScreen)(nil)
var _ router.EscHandler = (*QuizScreen)(nil)

// New starts a quiz attempt for the topic.
func New(a *app.App, topic content.Topic) *QuizScreen {
	s := &QuizScreen{
		app:          a,
		topic:        topic,
		questions:    a.Catalog.QuestionsForTopic(topic.ID),
		readingShown: make(map[string]bool),
	}
	a.Machine.Start(topic.ID)
	s.enterQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

// current returns the question under the cursor, or nil past the end.
func (s *QuizScreen) current() *content.Question {
	sess := s.app.Machine.Session()
	if sess == nil || sess.CurrentIndex >= len(s.questions) {
		return nil
	}
	return &s.questions[sess.CurrentIndex]
}

// enterQuestion prepares the UI for the question under the cursor,
// interposing its reading passage if it hasn't been shown yet.
func (s *QuizScreen) enterQuestion() {
	q := s.current()
	if q == nil {
		s.finish()
		return
	}

	s.choices = components.NewChoices(q.Options, q.CorrectIndex())

	if q.Kind() == content.KindReadingLinked && !s.readingShown[q.ReadingTextID] {
		s.app.Machine.SetReadingText(q.ReadingTextID, true)
		s.phase = phaseReading
		return
	}
	s.phase = phaseQuestion
}

// finish closes the attempt: study time and answered questions go to
// the statistics aggregator, a fully answered quiz completes the topic,
// and everything is persisted locally.
func (s *QuizScreen) finish() {
	result := s.app.Machine.End(len(s.questions))
	if result == nil {
		return
	}
	s.result = result
	s.phase = phaseSummary

	minutes := int(math.Round(result.TimeSpent.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	s.app.Stats.UpdateDaily(minutes, s.answered)

	if s.answered == len(s.questions) && len(s.questions) > 0 {
		s.app.Tracker.RecordCompletion(s.topic.ID, result.Score)
	}

	if err := s.app.Bridge.Persist(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not persist state: %v\n", err)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseReading:
		switch kmsg.String() {
		case "enter", " ":
			sess := s.app.Machine.Session()
			if sess != nil {
				s.readingShown[sess.ReadingTextID] = true
				s.app.Machine.SetReadingText(sess.ReadingTextID, false)
			}
			s.phase = phaseQuestion
		}
		return s, nil

	case phaseQuestion:
		return s.updateQuestion(kmsg)

	case phaseSummary:
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	return s, nil
}

func (s *QuizScreen) updateQuestion(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	q := s.current()
	if q == nil {
		return s, nil
	}

	if !s.choices.Submitted {
		if kmsg.String() == "enter" {
			applied, correct := s.app.Machine.SelectAnswer(q, s.choices.Cursor)
			if applied {
				s.choices.Submitted = true
				s.choices.ChosenIndex = s.choices.Cursor
				s.answered++
				if correct {
					s.correct++
					s.app.Machine.UpdateScore(pointsPerQuestion)
				}
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(kmsg)
		return s, cmd
	}

	// Feedback shown; enter moves on.
	if kmsg.String() == "enter" {
		sess := s.app.Machine.Session()
		if sess != nil && sess.CurrentIndex >= len(s.questions)-1 {
			s.finish()
			return s, nil
		}
		s.app.Machine.NextQuestion()
		s.enterQuestion()
	}
	return s, nil
}

// HandleEsc closes the attempt before leaving so partial study time is
// still recorded. From the summary it just pops.
func (s *QuizScreen) HandleEsc() tea.Cmd {
	if s.phase != phaseSummary {
		s.finish()
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// HideChrome implements router.ChromeHider: the reading passage takes
// over the whole frame.
func (s *QuizScreen) HideChrome() bool {
	sess := s.app.Machine.Session()
	return s.phase == phaseReading && sess != nil && sess.ShowReading
}

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseReading:
		return s.viewReading(width, height)
	case phaseSummary:
		return s.viewSummary(width, height)
	default:
		return s.viewQuestion(width, height)
	}
}

func (s *QuizScreen) viewReading(width, height int) string {
	q := s.current()
	reading := s.app.Catalog.ReadingForQuestion(q)
	if reading == nil {
		return ""
	}

	title := theme.Title.Width(width).Render(reading.Title)
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-12, 64)).
		Render(reading.Body)
	hint := theme.Hint.Width(width).Align(lipgloss.Center).Render("Press Enter when you have finished reading")

	card := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(theme.Card.Render(body))

	return lipgloss.NewStyle().Width(width).Height(height).Render(
		"\n\n" + title + "\n\n" + card + "\n\n" + hint)
}

func (s *QuizScreen) viewQuestion(width, height int) string {
	q := s.current()
	sess := s.app.Machine.Session()
	if q == nil || sess == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("  " + theme.Subtitle.Render(fmt.Sprintf(
		"Question %d of %d · %d pts", sess.CurrentIndex+1, len(s.questions), sess.Score)) + "\n\n")

	b.WriteString("  " + theme.Body.Bold(true).Render(q.Text) + "\n")
	switch q.Kind() {
	case content.KindImage:
		b.WriteString("  " + theme.Hint.Render("[image] "+q.ImageURL) + "\n")
	case content.KindAudio:
		b.WriteString("  " + theme.Hint.Render("[audio] "+q.AudioURL) + "\n")
	}
	b.WriteString("\n" + s.choices.View())

	if s.choices.Submitted {
		b.WriteString("\n")
		if s.choices.IsCorrect() {
			b.WriteString("  " + theme.Correct.Render(fmt.Sprintf("Correct! +%d pts", pointsPerQuestion)) + "\n")
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Not quite — added to your review list") + "\n")
		}
		b.WriteString("  " + theme.Hint.Render("Enter to continue") + "\n")
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (s *QuizScreen) viewSummary(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	title := theme.Title.Width(width).Render("Quiz complete!")

	lines := []string{
		fmt.Sprintf("Score       %d pts", r.Score),
		fmt.Sprintf("Correct     %d / %d", s.correct, r.TotalQuestions),
		fmt.Sprintf("Time        %s", r.TimeSpent.Round(time.Second)),
	}
	if s.answered == r.TotalQuestions && r.TotalQuestions > 0 {
		lines = append(lines, "", theme.Correct.Render("Topic completed ✓"))
	}
	if n := s.app.Machine.Wrong().Len(); n > 0 {
		lines = append(lines, "", theme.Hint.Render(fmt.Sprintf("%d question(s) waiting in review", n)))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
	hint := theme.Hint.Width(width).Align(lipgloss.Center).Render("Enter to return")

	return lipgloss.NewStyle().Width(width).Height(height).Render(
		"\n\n" + title + "\n\n" + centered + "\n\n" + hint)
}

func (s *QuizScreen) Title() string {
	return s.topic.Name
}

// KeyHints implements router.KeyHintProvider.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "End quiz"},
		}
	}
}
