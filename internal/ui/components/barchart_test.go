package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestBarChartRendersLabelsAndValues(t *testing.T) {
	chart := NewBarChart([]Bar{
		{Label: "Mon", Value: 30},
		{Label: "Tue", Value: 0},
		{Label: "Wed", Value: 60},
	}, 8)

	out := chart.View()
	for _, want := range []string{"Mon", "Tue", "Wed", "30", "60"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q", want)
		}
	}
	// A zero day draws no bar and no value.
	if strings.Contains(out, " 0 ") {
		t.Error("zero value should not be printed above an empty column")
	}
}

func TestBarChartTallerValueGetsTallerBar(t *testing.T) {
	// Pair each probe with a fixed tall bar so the scale ceiling stays
	// constant, then compare total filled cells across renders.
	filled := func(v float64) int {
		chart := NewBarChart([]Bar{{Label: "a", Value: v}, {Label: "b", Value: 75}}, 10)
		return strings.Count(chart.View(), "█")
	}

	low, mid, high := filled(10), filled(40), filled(70)
	if !(low < mid && mid < high) {
		t.Errorf("filled cells not increasing with value: %d %d %d", low, mid, high)
	}
}

func TestBarChartEmpty(t *testing.T) {
	if out := NewBarChart(nil, 8).View(); out != "" {
		t.Errorf("empty chart rendered %q", out)
	}
}

func TestChoicesFirstSubmissionLocks(t *testing.T) {
	c := NewChoices([]string{"a", "b", "c"}, 1)

	c, _ = c.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !c.Submitted || c.ChosenIndex != 1 || !c.IsCorrect() {
		t.Fatalf("after submit: %+v", c)
	}

	// Further navigation is ignored once submitted.
	c, _ = c.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if c.Cursor != 1 {
		t.Errorf("cursor moved after submission: %d", c.Cursor)
	}
}
