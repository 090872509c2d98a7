package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/katebianchi/mealweek/internal/cli/formatter"
	"github.com/katebianchi/mealweek/internal/domain"
)

// Messages flowing through the TUI.
type (
	// refreshedMsg carries freshly recomputed summaries plus the selected
	// day's meal list.
	refreshedMsg struct {
		summaries []domain.DaySummary
		meals     []domain.MealRecord
	}
	refreshErrMsg struct{ err error }

	mealAddedMsg struct{ rec *domain.MealRecord }
	addErrMsg    struct{ err error }

	// ledgerChangedMsg arrives via the planner subscription after every
	// committed append; the model reacts by recomputing what it displays.
	ledgerChangedMsg struct{ day domain.Day }
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous day")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next day")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add meal")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// appModel is the root bubbletea model: a week dashboard with a day detail
// pane, plus a modal add-meal form.
type appModel struct {
	app  *App
	keys keyMap

	selected  int // index into domain.Week()
	summaries []domain.DaySummary
	meals     []domain.MealRecord

	form *mealForm // non-nil while the add-meal form is open

	detailVP viewport.Model

	width  int
	height int

	status   string
	errText  string
	changes  chan domain.Day
	quitting bool
}

func newAppModel(app *App) appModel {
	m := appModel{
		app:      app,
		keys:     defaultKeyMap(),
		changes:  make(chan domain.Day, 16),
		detailVP: viewport.New(0, 0),
	}

	// Reactive recomputation: every committed append pushes the changed
	// day; the update loop turns it into a refresh. The channel is
	// buffered and drops are harmless — a pending notification already
	// forces a full recompute.
	app.Planner.Subscribe(func(d domain.Day) {
		select {
		case m.changes <- d:
		default:
		}
	})

	return m
}

func (m appModel) selectedDay() domain.Day {
	return domain.Week()[m.selected]
}

func (m appModel) refreshCmd() tea.Cmd {
	day := m.selectedDay()
	return func() tea.Msg {
		ctx := context.Background()
		summaries, err := m.app.Planner.WeekSummary(ctx)
		if err != nil {
			return refreshErrMsg{err}
		}
		meals, err := m.app.Planner.MealsFor(ctx, day)
		if err != nil {
			return refreshErrMsg{err}
		}
		return refreshedMsg{summaries: summaries, meals: meals}
	}
}

func (m appModel) addMealCmd(candidate domain.MealRecord) tea.Cmd {
	return func() tea.Msg {
		rec, err := m.app.Planner.AddMeal(context.Background(), candidate)
		if err != nil {
			return addErrMsg{err}
		}
		return mealAddedMsg{rec: rec}
	}
}

func (m appModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return ledgerChangedMsg{day: <-m.changes}
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.waitForChange())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detailVP.Width = msg.Width
		m.detailVP.Height = m.detailHeight()
		m.detailVP.SetContent(m.detailContent())
		return m, nil

	case refreshedMsg:
		m.summaries = msg.summaries
		m.meals = msg.meals
		m.errText = ""
		m.detailVP.SetContent(m.detailContent())
		return m, nil

	case refreshErrMsg:
		m.errText = msg.err.Error()
		return m, nil

	case mealAddedMsg:
		m.status = fmt.Sprintf("Added %q to %s", msg.rec.Name, msg.rec.Day.Title())
		return m, nil

	case addErrMsg:
		m.errText = msg.err.Error()
		return m, nil

	case ledgerChangedMsg:
		// Recompute and re-arm the subscription listener.
		return m, tea.Batch(m.refreshCmd(), m.waitForChange())

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.detailVP, cmd = m.detailVP.Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.selected = (m.selected + 6) % 7
		m.status = ""
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Down):
		m.selected = (m.selected + 1) % 7
		m.status = ""
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Add):
		m.form = newMealForm(m.selectedDay())
		m.status = ""
		m.errText = ""
		return m, m.form.form.Init()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	}

	var cmd tea.Cmd
	m.detailVP, cmd = m.detailVP.Update(msg)
	return m, cmd
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		return m, nil
	}

	updated, cmd := m.form.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		candidate := m.form.candidate()
		m.form = nil
		return m, m.addMealCmd(candidate)
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.formView()
	}
	return m.dashboardView()
}

// detailHeight returns the viewport height left for the meal table after
// the fixed chrome (title, week table, summary block, status, help).
func (m appModel) detailHeight() int {
	const chrome = 19
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	return h
}

func (m appModel) statusLine() string {
	if m.errText != "" {
		return formatter.StyleRed.Render("Error: " + m.errText)
	}
	if m.status != "" {
		return formatter.StyleGreen.Render(m.status)
	}
	return ""
}

func (m appModel) helpLine() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Refresh, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return formatter.Dim(joinWithDots(parts))
}

func joinWithDots(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "  ·  "
		}
		out += p
	}
	return out
}
