package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/lingoapp/lingo/internal/content"
)

// NoSelection marks a question with no answer chosen yet.
const NoSelection = -1

// State is the lifecycle state of the machine.
type State int

const (
	StateAbsent     State = iota // no active session
	StateInProgress              // serving questions
)

// Session is the ephemeral state of one quiz attempt. It exists only while
// a quiz is active and is never persisted.
type Session struct {
	AttemptID string
	TopicID   string

	// CurrentIndex is the cursor into the served question list.
	// It only ever moves forward within a session.
	CurrentIndex int

	// Score accumulates points awarded by the caller. Monotone.
	Score int

	// Selected is the chosen option index for the current question,
	// or NoSelection until the learner picks one.
	Selected int

	// ReadingTextID and ShowReading control the reading interstitial.
	// They are independent of the question cursor.
	ReadingTextID string
	ShowReading   bool

	startedAt time.Time
}

// Result is published when a quiz ends.
type Result struct {
	AttemptID      string
	TopicID        string
	Score          int
	TotalQuestions int
	TimeSpent      time.Duration
}

// Machine drives a single quiz attempt. All operations are no-ops rather
// than errors when called out of sequence; the UI owns the sequencing.
type Machine struct {
	session *Session
	wrong   *WrongSet
	now     func() time.Time
}

// NewMachine creates a machine with an empty wrong-question set.
func NewMachine() *Machine {
	return &Machine{
		wrong: NewWrongSet(),
		now:   time.Now,
	}
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	if m.session == nil {
		return StateAbsent
	}
	return StateInProgress
}

// Session returns the active session, or nil when absent.
func (m *Machine) Session() *Session {
	return m.session
}

// Wrong returns the wrong-question set. It outlives individual sessions.
func (m *Machine) Wrong() *WrongSet {
	return m.wrong
}

// Start creates a fresh session for the topic, overwriting any previous one.
func (m *Machine) Start(topicID string) {
	m.session = &Session{
		AttemptID: uuid.NewString(),
		TopicID:   topicID,
		Selected:  NoSelection,
		startedAt: m.now(),
	}
}

// SelectAnswer records the learner's choice for the given question.
// The first selection per question wins; repeated taps are ignored so a
// double-tap can never score twice. An incorrect choice captures the
// question into the wrong set, deduplicated per attempt.
// Returns whether the selection was applied and whether it was correct.
func (m *Machine) SelectAnswer(q *content.Question, index int) (applied, correct bool) {
	s := m.session
	if s == nil || s.Selected != NoSelection {
		return false, false
	}
	if q == nil || index < 0 || index >= len(q.Options) {
		return false, false
	}

	s.Selected = index
	correct = q.IsCorrect(index)
	if !correct {
		m.wrong.Add(q)
	}
	return true, correct
}

// UpdateScore adds points to the running score. Negative input is clamped
// to zero so the score stays monotone.
func (m *Machine) UpdateScore(points int) {
	if m.session == nil || points <= 0 {
		return
	}
	m.session.Score += points
}

// SetReadingText sets the reading interstitial independently of the cursor.
// The caller decides when to clear it; NextQuestion never does.
func (m *Machine) SetReadingText(textID string, show bool) {
	if m.session == nil {
		return
	}
	m.session.ReadingTextID = textID
	m.session.ShowReading = show
}

// NextQuestion advances the cursor and clears the answer selection.
// The reading interstitial fields are left untouched.
func (m *Machine) NextQuestion() {
	if m.session == nil {
		return
	}
	m.session.CurrentIndex++
	m.session.Selected = NoSelection
}

// End completes the quiz: the session is destroyed and a Result is returned
// for the progress tracker and statistics aggregator. TotalQuestions comes
// from the caller because a quiz may be exited before the last question.
// A second End with no active session returns nil.
func (m *Machine) End(totalQuestions int) *Result {
	s := m.session
	if s == nil {
		return nil
	}
	m.session = nil
	return &Result{
		AttemptID:      s.AttemptID,
		TopicID:        s.TopicID,
		Score:          s.Score,
		TotalQuestions: totalQuestions,
		TimeSpent:      m.now().Sub(s.startedAt),
	}
}

// ClearWrongQuestions empties the wrong-question set. Independent of
// session state; used when a repeat-practice round starts fresh.
func (m *Machine) ClearWrongQuestions() {
	m.wrong.Clear()
}
