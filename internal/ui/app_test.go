package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/match"
	"github.com/emilyvoss/uplift/internal/mood"
)

// stubConfig returns an AppConfig whose Recommend immediately replies
// with a fixed result set.
func stubConfig(calls *int) AppConfig {
	return AppConfig{
		Recommend: func(m mood.Label, t catalog.ContentType) tea.Cmd {
			return func() tea.Msg {
				*calls++
				return RecsLoaded{
					Mood: m,
					Type: t,
					Rec: match.Recommendation{
						Mode: match.RankedBySimilarity,
						Results: []match.Result{
							{Item: catalog.Item{Title: "Ocean Waves"}, Similarity: 100},
							{Item: catalog.Item{Title: "Rainy Window"}, Similarity: 60},
						},
					},
				}
			}
		},
		Shuffle: func() tea.Cmd {
			return func() tea.Msg {
				return Shuffled{Rec: match.Recommendation{Results: []match.Result{}}}
			}
		},
	}
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	app, ok := model.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", model)
	}
	return app, cmd
}

func TestMoodPickerNavigation(t *testing.T) {
	calls := 0
	a := NewApp(stubConfig(&calls))

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	a, _ = update(t, a, key("j"))
	a, _ = update(t, a, key("j"))
	a, _ = update(t, a, key("k"))
	if a.moodCursor != 1 {
		t.Errorf("expected mood cursor 1, got %d", a.moodCursor)
	}

	// Clamped at the top
	a, _ = update(t, a, key("k"))
	a, _ = update(t, a, key("k"))
	if a.moodCursor != 0 {
		t.Errorf("expected mood cursor clamped at 0, got %d", a.moodCursor)
	}
}

func TestSelectFlow(t *testing.T) {
	calls := 0
	a := NewApp(stubConfig(&calls))
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	// Pick the second mood (stressed)
	a, _ = update(t, a, key("j"))
	a, _ = update(t, a, key("enter"))
	if a.state != statePickType {
		t.Fatalf("expected type picker after mood select, got state %d", a.state)
	}
	if a.mood != mood.Stressed {
		t.Errorf("expected mood stressed, got %q", a.mood)
	}

	// Pick meditation and run the stub recommendation
	a, cmd := update(t, a, key("j"))
	a, cmd = update(t, a, key("enter"))
	if cmd == nil {
		t.Fatal("expected a recommend command")
	}
	a, _ = update(t, a, cmd())

	if a.state != stateResults {
		t.Fatalf("expected results screen, got state %d", a.state)
	}
	if calls != 1 {
		t.Errorf("expected 1 recommend call, got %d", calls)
	}
	if len(a.Results()) != 2 {
		t.Errorf("expected 2 results, got %d", len(a.Results()))
	}
}

func TestDescribeFlow(t *testing.T) {
	calls := 0
	a := NewApp(stubConfig(&calls))
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	// Move to the free-text option (last entry) and select it
	for i := 0; i < len(mood.Labels); i++ {
		a, _ = update(t, a, key("j"))
	}
	a, _ = update(t, a, key("enter"))
	if a.state != stateDescribe {
		t.Fatalf("expected describe screen, got state %d", a.state)
	}

	a.input.SetValue("so much pressure at work")
	a, _ = update(t, a, key("enter"))
	if a.state != statePickType {
		t.Fatalf("expected type picker after detect, got state %d", a.state)
	}
	if a.mood != mood.Stressed {
		t.Errorf("expected detected mood stressed, got %q", a.mood)
	}
}

func TestResultsViewShowsScores(t *testing.T) {
	calls := 0
	a := NewApp(stubConfig(&calls))
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	a, _ = update(t, a, key("enter")) // mood: happy
	a, cmd := update(t, a, key("enter"))
	a, _ = update(t, a, cmd())

	view := a.View()
	if !containsAll(view, "Ocean Waves", "100%") {
		t.Errorf("expected titles and similarity in view, got:\n%s", view)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
