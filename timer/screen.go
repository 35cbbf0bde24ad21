package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/observable"
)

const (
	padding  = 2
	maxWidth = 60
)

// CompletionRecorder counts a completed session against its focus model.
type CompletionRecorder interface {
	RecordCompletion(id int) (models.FocusModel, error)
}

// ScreenOptions configures the session screen.
type ScreenOptions struct {
	// SoundPath is the ambient sound file played during focus phases. Empty
	// means silence.
	SoundPath string
	// Cmd runs once the session is completed.
	Cmd       string
	Notify    bool
	DarkTheme bool
}

// Screen is the terminal user interface of a running session.
type Screen struct {
	engine   *Engine
	recorder CompletionRecorder
	player   *ambientPlayer
	changes  chan struct{}
	cancel   context.CancelFunc
	opts     ScreenOptions
	style    Style
	help     help.Model
	progress progress.Model
	model    models.FocusModel
	state    State
	err      error
	recorded bool
}

type (
	changedMsg struct{}

	completionMsg struct {
		err   error
		model models.FocusModel
	}
)

// NewScreen binds a screen to an engine on which a session for model has
// already been started.
func NewScreen(
	engine *Engine,
	recorder CompletionRecorder,
	model models.FocusModel,
	opts ScreenOptions,
) *Screen {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Screen{
		engine:   engine,
		recorder: recorder,
		model:    model,
		opts:     opts,
		style:    NewStyle(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		changes: make(chan struct{}, 1),
		cancel:  cancel,
		state:   engine.Snapshot(),
	}

	forward(ctx, engine.TimeLeft, s.changes)
	forward(ctx, engine.Running, s.changes)
	forward(ctx, engine.Phase, s.changes)
	forward(ctx, engine.SessionCompleted, s.changes)
	forward(ctx, engine.Err, s.changes)

	if opts.SoundPath != "" {
		p, err := openAmbient(opts.SoundPath)
		if err != nil {
			slog.Warn("ambient sound disabled", slog.Any("error", err))
		}

		s.player = p
	}

	return s
}

// forward signals out whenever v changes, until ctx is done.
func forward[T comparable](
	ctx context.Context,
	v *observable.Value[T],
	out chan<- struct{},
) {
	ch := v.Subscribe(ctx)

	go func() {
		for range ch {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
}

func (s *Screen) listen() tea.Cmd {
	return func() tea.Msg {
		<-s.changes
		return changedMsg{}
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.listen(), func() tea.Msg {
		_ = s.engine.Resume()
		return changedMsg{}
	})
}

// recordCompletion counts the session against its focus model and runs the
// configured follow-ups.
func (s *Screen) recordCompletion() tea.Cmd {
	return func() tea.Msg {
		m, err := s.recorder.RecordCompletion(s.model.ID)
		if err != nil {
			return completionMsg{err: err}
		}

		if s.opts.Notify {
			title, msg := phaseMessage(models.Completed)
			notify(title, msg)
		}

		if err := runSessionCmd(s.opts.Cmd); err != nil {
			slog.Error("session command failed", slog.Any("error", err))
		}

		return completionMsg{model: m}
	}
}

// close stops everything the screen started. The engine is left to its
// owner.
func (s *Screen) close() {
	s.cancel()
	s.player.Close()
}
