package cli

import (
	"strings"

	"github.com/katebianchi/mealweek/internal/cli/formatter"
)

const appTitle = "mealweek — weekly nutrition ledger"

// dashboardView renders the main screen: the week table with the selected
// day highlighted, followed by the selected day's detail pane.
func (m appModel) dashboardView() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render(appTitle))
	b.WriteString("\n\n")

	if len(m.summaries) == 0 {
		b.WriteString(formatter.Dim("Loading..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(formatter.FormatWeekTable(m.summaries, m.selected))
	b.WriteString("\n")
	b.WriteString(m.dayDetailView())
	b.WriteString("\n")

	if status := m.statusLine(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.helpLine())
	b.WriteString("\n")

	return b.String()
}

// dayDetailView renders the selected day's summary block and its meal table
// inside the scrollable viewport.
func (m appModel) dayDetailView() string {
	var b strings.Builder
	b.WriteString(formatter.FormatDaySummary(m.summaries[m.selected]))
	b.WriteString("\n")
	b.WriteString(m.detailVP.View())
	return b.String()
}

// detailContent builds the meal table shown in the viewport.
func (m appModel) detailContent() string {
	if len(m.meals) == 0 {
		return formatter.Dim("No meals logged for " + m.selectedDay().Title() + ". Press a to add one.")
	}
	return formatter.RenderTable(formatter.MealTableHeaders, formatter.FormatMealRows(m.meals))
}

// formView renders the modal add-meal form.
func (m appModel) formView() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Add Meal"))
	b.WriteString("\n\n")
	b.WriteString(m.form.form.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("esc cancel"))
	b.WriteString("\n")
	return b.String()
}
