package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/repository"
)

const (
	noModelsMsg   = "No focus models yet. Add one with 'focusflow model add'"
	noSessionsMsg = "No sessions found"
	dateFormat    = "Jan 02, 2006 03:04 PM"
)

func formatMillis(ms *int64) string {
	if ms == nil {
		return ""
	}

	return timeutil.FromMillis(*ms).Format(dateFormat)
}

func modelStatus(m *models.FocusModel) string {
	if m.IsCompleted {
		return ui.Green("done")
	}

	return ui.Yellow("in progress")
}

func sessionStatus(s *models.FocusSession) string {
	if s.IsCompleted {
		return ui.Green("completed")
	}

	if s.Active() {
		return ui.Red("abandoned")
	}

	return ""
}

// printModelsTable prints a table of focus models.
func printModelsTable(w io.Writer, list []models.FocusModel) error {
	tableBody := [][]string{
		{"ID", "TITLE", "CATEGORY", "FOCUS/REST", "PROGRESS", "STATUS", "CREATED"},
	}

	for i := range list {
		m := &list[i]
		done, total := m.Progress()

		tableBody = append(tableBody, []string{
			strconv.Itoa(m.ID),
			m.Title,
			m.Category,
			fmt.Sprintf("%dm/%dm", m.FocusDuration, m.RestDuration),
			fmt.Sprintf("%d/%d", done, total),
			modelStatus(m),
			m.Created().Local().Format(dateFormat),
		})
	}

	return ui.PrintTable(w, tableBody)
}

// printModel prints the details of a focus model.
func printModel(w io.Writer, m *models.FocusModel) {
	done, total := m.Progress()

	fmt.Fprintf(w, "%s %s\n", ui.Cyan("Title:"), m.Title)

	if m.Category != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Cyan("Category:"), m.Category)
	}

	if m.Goals != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Cyan("Goals:"), m.Goals)
	}

	fmt.Fprintf(w, "%s %dm focus, %dm rest\n", ui.Cyan("Phases:"), m.FocusDuration, m.RestDuration)
	fmt.Fprintf(w, "%s %d/%d (%s)\n", ui.Cyan("Progress:"), done, total, modelStatus(m))
	fmt.Fprintf(w, "%s %s\n\n", ui.Cyan("Created:"), m.Created().Local().Format(dateFormat))
}

// printSessionsTable prints a table of sessions.
func printSessionsTable(w io.Writer, sessions []models.FocusSession) error {
	tableBody := [][]string{
		{"ID", "STARTED", "ENDED", "PHASE", "STATUS"},
	}

	for i := range sessions {
		s := &sessions[i]

		tableBody = append(tableBody, []string{
			strconv.Itoa(s.ID),
			formatMillis(&s.StartTime),
			formatMillis(s.EndTime),
			ui.Phase(s.CurrentPhase),
			sessionStatus(s),
		})
	}

	return ui.PrintTable(w, tableBody)
}

// printHistoryTable prints sessions alongside the focus model they ran
// against.
func printHistoryTable(w io.Writer, entries []repository.HistoryEntry) error {
	tableBody := [][]string{
		{"ID", "FOCUS MODEL", "STARTED", "ENDED", "PHASE", "STATUS"},
	}

	for i := range entries {
		s := &entries[i].Session

		title := ui.Red("(deleted)")
		if entries[i].Focus != nil {
			title = entries[i].Focus.Title
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(s.ID),
			title,
			formatMillis(&s.StartTime),
			formatMillis(s.EndTime),
			ui.Phase(s.CurrentPhase),
			sessionStatus(s),
		})
	}

	return ui.PrintTable(w, tableBody)
}
