package login

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/router"
	"github.com/lingoapp/lingo/internal/ui/components"
	"github.com/lingoapp/lingo/internal/ui/layout"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

const requestTimeout = 30 * time.Second

// signInResultMsg carries the outcome of an async sign-in.
type signInResultMsg struct {
	err error
}

// syncResultMsg carries the outcome of an async push or sign-out.
type syncResultMsg struct {
	signedOut bool
	err       error
}

// LoginScreen handles the account boundary: signing in pulls the
// server's statistics, signing out pushes the local aggregate.
type LoginScreen struct {
	app *app.App

	email    components.TextInput
	password components.TextInput
	focused  int // 0 = email, 1 = password

	busy   bool
	status string
	errMsg string
}

var _ router.Screen = (*LoginScreen)(nil)

// New creates the account screen.
func New(a *app.App) *LoginScreen {
	s := &LoginScreen{
		app:      a,
		email:    components.NewTextInput("you@example.com", false, 64),
		password: components.NewTextInput("password", true, 64),
	}
	s.password.Blur()
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	if s.app.LoggedIn {
		return nil
	}
	return s.email.Focus()
}

func (s *LoginScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.status = "Signed in — progress restored from your account"
		return s, nil

	case syncResultMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		if msg.signedOut {
			s.status = ""
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.status = "Progress uploaded"
		return s, nil
	}

	if s.busy {
		return s, nil
	}

	if s.app.LoggedIn {
		return s.updateSignedIn(msg)
	}
	return s.updateForm(msg)
}

func (s *LoginScreen) updateSignedIn(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "s":
		s.busy = true
		return s, s.pushCmd(false)
	case "o":
		s.busy = true
		return s, s.pushCmd(true)
	}
	return s, nil
}

func (s *LoginScreen) pushCmd(signOut bool) tea.Cmd {
	a := s.app
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if signOut {
			err = a.SignOut(ctx)
		} else {
			err = a.Bridge.Push(ctx)
		}
		return syncResultMsg{signedOut: signOut, err: err}
	}
}

func (s *LoginScreen) updateForm(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			if s.focused == 0 {
				s.focused = 1
				s.email.Blur()
				return s, s.password.Focus()
			}
			s.focused = 0
			s.password.Blur()
			return s, s.email.Focus()

		case "enter":
			email := strings.TrimSpace(s.email.Value())
			password := s.password.Value()
			if email == "" || password == "" {
				s.errMsg = "Both fields are required"
				return s, nil
			}
			s.busy = true
			s.errMsg = ""
			a := s.app
			return s, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				return signInResultMsg{err: a.SignIn(ctx, email, password)}
			}
		}
	}

	var cmd tea.Cmd
	if s.focused == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) View(width, height int) string {
	var body string
	if s.app.LoggedIn {
		body = s.viewSignedIn()
	} else {
		body = s.viewForm()
	}

	if s.busy {
		body += "\n" + theme.Hint.Render("Talking to the server…")
	}
	if s.errMsg != "" {
		body += "\n" + theme.Incorrect.Render(s.errMsg)
	}
	if s.status != "" {
		body += "\n" + theme.Correct.Render(s.status)
	}

	card := theme.Card.Width(52).Render(body)
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
	return lipgloss.NewStyle().Width(width).Height(height).Render("\n\n" + centered)
}

func (s *LoginScreen) viewForm() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Sign in") + "\n\n")
	b.WriteString(fieldLabel("Email", s.focused == 0) + "\n")
	b.WriteString(s.email.View() + "\n\n")
	b.WriteString(fieldLabel("Password", s.focused == 1) + "\n")
	b.WriteString(s.password.View() + "\n")
	return b.String()
}

func (s *LoginScreen) viewSignedIn() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Account") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"%d min studied · %d topics completed",
		s.app.Stats.TotalMinutes(), len(s.app.Tracker.CompletedTopicIDs()))) + "\n\n")
	b.WriteString(theme.Body.Render("S") + theme.Hint.Render("  sync progress now") + "\n")
	b.WriteString(theme.Body.Render("O") + theme.Hint.Render("  sign out (uploads progress)") + "\n")
	return b.String()
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return theme.Selected.Render(name)
	}
	return theme.Hint.Render(name)
}

func (s *LoginScreen) Title() string {
	if s.app.LoggedIn {
		return "Account"
	}
	return "Sign in"
}

// KeyHints implements router.KeyHintProvider.
func (s *LoginScreen) KeyHints() []layout.KeyHint {
	if s.app.LoggedIn {
		return []layout.KeyHint{
			{Key: "S", Description: "Sync"},
			{Key: "O", Description: "Sign out"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}
