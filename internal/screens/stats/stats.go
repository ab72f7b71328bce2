package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/router"
	"github.com/lingoapp/lingo/internal/stats"
	"github.com/lingoapp/lingo/internal/ui/components"
	"github.com/lingoapp/lingo/internal/ui/layout"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

type view int

const (
	viewWeek view = iota
	viewFiveWeeks
)

// StatsScreen shows the study-time charts: the current week day by day
// and the last five weeks, plus goal progress.
type StatsScreen struct {
	app  *app.App
	view view
}

var _ router.Screen = (*StatsScreen)(nil)

// New creates the statistics screen on the weekly view.
func New(a *app.App) *StatsScreen {
	return &StatsScreen{app: a}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "left", "right", "h", "l":
		if s.view == viewWeek {
			s.view = viewFiveWeeks
		} else {
			s.view = viewWeek
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	agg := s.app.Stats

	var b strings.Builder

	var bars []components.Bar
	var heading string
	if s.view == viewWeek {
		heading = "This week"
		for _, d := range agg.CurrentWeek() {
			bars = append(bars, components.Bar{Label: d.Label, Value: float64(d.Minutes)})
		}
	} else {
		heading = "Last five weeks"
		for _, w := range agg.LastFiveWeeks() {
			bars = append(bars, components.Bar{Label: w.Label, Value: float64(w.Minutes)})
		}
	}

	b.WriteString("  " + theme.Body.Bold(true).Render(heading) + "  " +
		theme.Hint.Render("(tab to switch)") + "\n\n")

	chartHeight := height - 14
	if chartHeight < 4 {
		chartHeight = 4
	}
	if chartHeight > 12 {
		chartHeight = 12
	}

	chart := components.NewBarChart(bars, chartHeight)
	if s.view == viewFiveWeeks {
		chart.BarWidth = 6
	}
	b.WriteString(indent(chart.View(), 4) + "\n\n")

	goals := agg.Goals()
	b.WriteString("  " + components.NewProgressBar(
		fmt.Sprintf("Week  %3d/%d min", agg.CurrentWeekTotal(), goals.WeeklyMinutes),
		agg.WeeklyGoalProgress()/100, true, width-8).View() + "\n")
	b.WriteString("  " + components.NewProgressBar(
		fmt.Sprintf("Month %3d/%d min", agg.CurrentMonthTotal(), goals.MonthlyMinutes),
		agg.MonthlyGoalProgress()/100, true, width-8).View() + "\n\n")

	b.WriteString("  " + theme.Hint.Render(fmt.Sprintf(
		"%d minutes studied in total", agg.TotalMinutes())) + "\n")

	if maxBar(bars) > stats.SoftCap {
		b.WriteString("  " + theme.Hint.Render("Bars above the cap are compressed to keep the chart readable") + "\n")
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

// KeyHints implements router.KeyHintProvider.
func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch chart"},
		{Key: "Esc", Description: "Back"},
	}
}

func maxBar(bars []components.Bar) float64 {
	m := 0.0
	for _, b := range bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
