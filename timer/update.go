package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focusflow/internal/models"
)

func counting(p models.Phase) bool {
	return p == models.Focus || p == models.Rest
}

// handleChange refreshes the screen from the engine and reacts to phase
// switches and completion.
func (s *Screen) handleChange() (tea.Model, tea.Cmd) {
	prev := s.state
	s.state = s.engine.Snapshot()

	cmds := []tea.Cmd{s.listen()}

	if s.opts.Notify && prev.Session != nil && s.state.Running &&
		counting(prev.Phase) && counting(s.state.Phase) &&
		prev.Phase != s.state.Phase {
		phase := s.state.Phase

		cmds = append(cmds, func() tea.Msg {
			title, msg := phaseMessage(phase)
			notify(title, msg)

			return nil
		})
	}

	s.player.SetPlaying(s.state.Running && s.state.Phase == models.Focus)

	if s.state.SessionCompleted && !s.recorded {
		s.recorded = true

		cmds = append(cmds, s.recordCompletion())
	}

	return s, tea.Batch(cmds...)
}

func (s *Screen) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		if !s.state.SessionCompleted {
			_ = s.engine.ResetSession()
		}

		s.close()

		return s, tea.Quit

	case s.state.SessionCompleted:
		return s, nil

	case key.Matches(msg, defaultKeymap.togglePlay):
		_ = s.engine.Toggle()

	case key.Matches(msg, defaultKeymap.skip):
		s.engine.SkipPhase()

	case key.Matches(msg, defaultKeymap.reset):
		_ = s.engine.ResetTimer()

	case key.Matches(msg, defaultKeymap.complete):
		_ = s.engine.CompleteSession()
	}

	return s, nil
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		return s.handleChange()

	case completionMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}

		s.model = msg.model

		return s, nil

	case tea.KeyMsg:
		return s.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		s.progress.Width = msg.Width - padding*2 - 4
		if s.progress.Width > maxWidth {
			s.progress.Width = maxWidth
		}

		return s, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := s.progress.Update(msg)
		s.progress, _ = progressModel.(progress.Model)

		return s, cmd
	}

	return s, nil
}
