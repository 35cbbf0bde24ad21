package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func formatTimeRemaining(secs int) string {
	m, s := timeutil.SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// phaseLength returns the full length of phase in seconds.
func (s *Screen) phaseLength(phase models.Phase) int {
	if phase == models.Rest {
		return s.model.RestDuration * secondsInAMinute
	}

	return s.model.FocusDuration * secondsInAMinute
}

func (s *Screen) badge() string {
	switch s.state.Phase {
	case models.Rest:
		return s.style.Rest.Render("REST")
	case models.Paused:
		return s.style.Paused.Render("PAUSED")
	case models.Completed:
		return s.style.Completed.Render("COMPLETED")
	default:
		return s.style.Focus.Render("FOCUS")
	}
}

func (s *Screen) timerView() string {
	var b strings.Builder

	b.WriteString(s.badge())
	b.WriteString(s.style.Title.Render(s.model.Title))

	if s.model.Category != "" {
		b.WriteString(s.style.Hint.Render(" · " + s.model.Category))
	}

	b.WriteString(s.style.Hint.Render(
		fmt.Sprintf(" (cycles: %d)", s.state.CompletedCycles),
	))

	length := s.phaseLength(s.engine.activePhase())

	var elapsed float64
	if length > 0 {
		elapsed = 1 - float64(s.state.TimeLeft)/float64(length)
	}

	b.WriteString("\n\n")
	b.WriteString(s.style.Main.Render(formatTimeRemaining(s.state.TimeLeft)))
	b.WriteString("\n\n")
	b.WriteString(s.progress.ViewAs(elapsed))

	if s.state.Err != "" {
		b.WriteString("\n\n" + s.style.Error.Render(s.state.Err))
	}

	b.WriteString("\n\n" + s.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.reset,
		defaultKeymap.complete,
		defaultKeymap.quit,
	}))

	return b.String()
}

func (s *Screen) completedView() string {
	var b strings.Builder

	b.WriteString(s.badge())
	b.WriteString(s.style.Title.Render(s.model.Title))
	b.WriteString("\n\n")

	switch {
	case s.err != nil:
		b.WriteString(s.style.Error.Render(s.err.Error()))
	case s.model.IsCompleted:
		b.WriteString(s.style.Main.Render("All sessions for this focus are done"))
	default:
		done, total := s.model.Progress()
		b.WriteString(s.style.Main.Render(
			fmt.Sprintf("Session complete (%d/%d)", done, total),
		))
	}

	b.WriteString("\n\n" + s.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return b.String()
}

func (s *Screen) View() string {
	if s.state.SessionCompleted {
		return s.style.Base.Render(s.completedView())
	}

	return s.style.Base.Render(s.timerView())
}
