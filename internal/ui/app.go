package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/match"
	"github.com/emilyvoss/uplift/internal/mood"
)

// state is the current screen.
type state int

const (
	statePickMood state = iota
	stateDescribe
	statePickType
	stateResults
)

// AppConfig wires the App to the recommendation session.
// IMPORTANT: App does NOT hold the session or catalog. It receives
// results via messages.
type AppConfig struct {
	// Recommend returns a Cmd that computes recommendations.
	Recommend func(m mood.Label, t catalog.ContentType) tea.Cmd
	// Shuffle returns a Cmd that permutes the cached result set.
	Shuffle func() tea.Cmd
}

// App is the root Bubble Tea model.
type App struct {
	cfg AppConfig

	state      state
	moodCursor int
	typeCursor int
	input      textinput.Model

	mood mood.Label
	typ  catalog.ContentType
	rec  match.Recommendation

	err           error
	width, height int
	ready         bool
	loading       bool
}

// NewApp creates the App.
func NewApp(cfg AppConfig) App {
	input := textinput.New()
	input.Placeholder = "tell me how you're feeling..."
	input.CharLimit = 200

	return App{
		cfg:   cfg,
		input: input,
	}
}

// Init does nothing; the first screen needs no data.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case RecsLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.mood = msg.Mood
		a.typ = msg.Type
		a.rec = msg.Rec
		a.err = nil
		a.state = stateResults
		return a, nil

	case Shuffled:
		a.rec = msg.Rec
		return a, nil
	}

	if a.state == stateDescribe {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg processes keyboard input per screen.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any existing error on key press
	if a.err != nil {
		a.err = nil
	}

	// The describe screen owns the keyboard except for esc/enter.
	if a.state == stateDescribe {
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.state = statePickMood
			return a, nil
		case "enter":
			a.mood = mood.Detect(a.input.Value())
			a.state = statePickType
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		a.moveCursor(1)
		return a, nil

	case "k", "up":
		a.moveCursor(-1)
		return a, nil

	case "esc":
		switch a.state {
		case statePickType:
			a.state = statePickMood
		case stateResults:
			a.state = statePickType
		}
		return a, nil

	case "enter":
		return a.handleSelect()

	case "s":
		if a.state == stateResults && a.cfg.Shuffle != nil {
			return a, a.cfg.Shuffle()
		}
		return a, nil

	case "m":
		if a.state == stateResults {
			a.state = statePickMood
		}
		return a, nil

	case "t":
		if a.state == stateResults {
			a.state = statePickType
		}
		return a, nil
	}

	return a, nil
}

// moveCursor moves the active screen's cursor by delta, clamped.
func (a *App) moveCursor(delta int) {
	switch a.state {
	case statePickMood:
		// Last entry is the free-text "describe it" option
		a.moodCursor = clamp(a.moodCursor+delta, 0, len(mood.Labels))
	case statePickType:
		a.typeCursor = clamp(a.typeCursor+delta, 0, len(catalog.Types)-1)
	}
}

// handleSelect confirms the current screen's selection.
func (a App) handleSelect() (tea.Model, tea.Cmd) {
	switch a.state {
	case statePickMood:
		if a.moodCursor == len(mood.Labels) {
			a.input.SetValue("")
			a.state = stateDescribe
			return a, a.input.Focus()
		}
		a.mood = mood.Labels[a.moodCursor]
		a.state = statePickType
		return a, nil

	case statePickType:
		a.typ = catalog.Types[a.typeCursor]
		if a.cfg.Recommend != nil {
			a.loading = true
			return a, a.cfg.Recommend(a.mood, a.typ)
		}
		return a, nil
	}
	return a, nil
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.state {
	case statePickMood:
		body = a.viewMoodPicker()
	case stateDescribe:
		body = a.viewDescribe()
	case statePickType:
		body = a.viewTypePicker()
	case stateResults:
		body = a.viewResults()
	}

	errorBar := ""
	if a.err != nil {
		errorBar = "\n" + ErrorStyle.Width(a.width).Render("Error: "+a.err.Error()+" (press any key to dismiss)")
	}

	return body + errorBar + "\n" + a.statusBar()
}

func (a App) viewMoodPicker() string {
	var b strings.Builder
	b.WriteString(TitleBar.Render("How are you feeling today?"))
	b.WriteString("\n")

	for i, label := range mood.Labels {
		line := string(label)
		if i == a.moodCursor {
			b.WriteString(SelectedItem.Render(line))
		} else {
			b.WriteString(NormalItem.Render(line))
		}
		b.WriteString("\n")
	}

	describe := "something else (describe it)"
	if a.moodCursor == len(mood.Labels) {
		b.WriteString(SelectedItem.Render(describe))
	} else {
		b.WriteString(NormalItem.Render(describe))
	}
	return b.String()
}

func (a App) viewDescribe() string {
	var b strings.Builder
	b.WriteString(TitleBar.Render("Describe how you're feeling"))
	b.WriteString("\n")
	b.WriteString(NormalItem.Render(a.input.View()))
	return b.String()
}

func (a App) viewTypePicker() string {
	var b strings.Builder
	b.WriteString(TitleBar.Render(fmt.Sprintf("Feeling %s. What would you like to explore?", a.mood)))
	b.WriteString("\n")

	for i, typ := range catalog.Types {
		line := typ.Display()
		if i == a.typeCursor {
			b.WriteString(SelectedItem.Render(line))
		} else {
			b.WriteString(NormalItem.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) viewResults() string {
	var b strings.Builder

	heading := fmt.Sprintf("%s for feeling %s", a.typ.Display(), a.mood)
	b.WriteString(TitleBar.Render(heading))
	b.WriteString(" ")
	b.WriteString(ModeBadge.Render(a.rec.Mode.String()))
	b.WriteString("\n\n")

	if len(a.rec.Results) == 0 {
		b.WriteString(NormalItem.Render("Nothing in this catalog yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range a.rec.Results {
		title := fmt.Sprintf("%d. %s", i+1, r.Item.Title)
		if a.rec.Mode == match.RankedBySimilarity {
			title += "  " + ScoreBadge.Render(fmt.Sprintf("%.0f%%", r.Similarity))
		}
		b.WriteString(NormalItem.Render(title))
		b.WriteString("\n")
		if r.Item.Creator != "" {
			b.WriteString(CreatorText.Render("by " + r.Item.Creator))
			b.WriteString("\n")
		}
		if r.Item.URL != "" {
			b.WriteString(URLText.Render(r.Item.URL))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// statusBar renders the context-sensitive key hints.
func (a App) statusBar() string {
	var hints string
	switch a.state {
	case statePickMood:
		hints = keyHint("j/k", "move") + keyHint("enter", "select") + keyHint("q", "quit")
	case stateDescribe:
		hints = keyHint("enter", "detect mood") + keyHint("esc", "back")
	case statePickType:
		hints = keyHint("j/k", "move") + keyHint("enter", "recommend") + keyHint("esc", "back")
	case stateResults:
		hints = keyHint("s", "shuffle") + keyHint("m", "mood") + keyHint("t", "type") + keyHint("q", "quit")
	}
	return StatusBar.Width(max(a.width, 0)).Render(hints)
}

func keyHint(key, desc string) string {
	return StatusBarKey.Render(key) + StatusBarText.Render(" "+desc+"  ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mood returns the selected mood (for testing).
func (a App) Mood() mood.Label { return a.mood }

// Results returns the current result set (for testing).
func (a App) Results() []match.Result { return a.rec.Results }
