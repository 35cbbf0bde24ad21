// Package timer runs focus sessions: it counts down alternating focus and
// rest phases and mirrors every phase change to the session's stored record
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/observable"
)

const secondsInAMinute = 60

// SessionStore persists session records on behalf of the engine.
type SessionStore interface {
	Insert(s models.FocusSession) (models.FocusSession, error)
	Update(s models.FocusSession) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithTick sets how long one second of countdown lasts. It defaults to one
// second.
func WithTick(d time.Duration) Option {
	return func(e *Engine) {
		e.tick = d
	}
}

// WithClock sets the source of the timestamps recorded on sessions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// State is a consistent snapshot of the engine.
type State struct {
	Session          *models.FocusSession
	Err              string
	Phase            models.Phase
	TimeLeft         int
	CompletedCycles  int
	Running          bool
	SessionCompleted bool
}

// Engine owns the countdown of a single session at a time. Each field of
// its state is published through an observable cell so that a user
// interface can follow it without the engine knowing about it.
type Engine struct {
	repo SessionStore
	now  func() time.Time

	// published state
	TimeLeft         *observable.Value[int]
	Running          *observable.Value[bool]
	Phase            *observable.Value[models.Phase]
	SessionCompleted *observable.Value[bool]
	CompletedCycles  *observable.Value[int]
	Err              *observable.Value[string]
	Current          *observable.Value[*models.FocusSession]

	// cancel and done belong to the countdown goroutine, if any
	cancel context.CancelFunc
	done   chan struct{}

	session *models.FocusSession
	err     string
	phase   models.Phase
	// active is the focus or rest phase the countdown is in, which phase
	// hides while the session is paused
	active models.Phase

	tick              time.Duration
	timeLeft          int
	cycles            int
	focusSeconds      int
	restSeconds       int
	running           bool
	completed         bool
	manuallyCompleted bool

	// opMu serialises the public operations; mu guards the state shared
	// with the countdown goroutine
	opMu sync.Mutex
	mu   sync.Mutex
}

// New returns an idle engine that stores sessions in repo.
func New(repo SessionStore, opts ...Option) *Engine {
	e := &Engine{
		repo:             repo,
		now:              time.Now,
		tick:             time.Second,
		phase:            models.Focus,
		active:           models.Focus,
		TimeLeft:         observable.NewValue(0),
		Running:          observable.NewValue(false),
		Phase:            observable.NewValue(models.Focus),
		SessionCompleted: observable.NewValue(false),
		CompletedCycles:  observable.NewValue(0),
		Err:              observable.NewValue(""),
		Current:          observable.NewValue[*models.FocusSession](nil),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Snapshot returns the current state of the engine.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return State{
		Session:          e.session,
		Err:              e.err,
		Phase:            e.phase,
		TimeLeft:         e.timeLeft,
		CompletedCycles:  e.cycles,
		Running:          e.running,
		SessionCompleted: e.completed,
	}
}

// activePhase returns the focus or rest phase the countdown is in, even
// while the session is paused.
func (e *Engine) activePhase() models.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.active
}

// StartSession creates and stores a new session for the focus model
// focusID and loads its first focus phase. The countdown is not started.
func (e *Engine) StartSession(focusID, focusMinutes, restMinutes int) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if focusMinutes <= 0 || restMinutes <= 0 {
		return e.report(errInvalidDuration)
	}

	e.stopCountdown()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.publish()

	e.running = false

	saved, err := e.repo.Insert(models.FocusSession{
		FocusID:      focusID,
		StartTime:    e.now().UnixMilli(),
		CurrentPhase: models.Focus,
	})
	if err != nil {
		return e.fail(errStartSession.Wrap(err))
	}

	e.err = ""
	e.session = &saved
	e.focusSeconds = focusMinutes * secondsInAMinute
	e.restSeconds = restMinutes * secondsInAMinute
	e.timeLeft = e.focusSeconds
	e.phase = models.Focus
	e.active = models.Focus
	e.cycles = 0
	e.completed = false
	e.manuallyCompleted = false

	slog.Info(
		"session started",
		slog.Int("session_id", saved.ID),
		slog.Int("focus_id", focusID),
		slog.Int("focus_minutes", focusMinutes),
		slog.Int("rest_minutes", restMinutes),
	)

	return nil
}

// Toggle pauses a running countdown or resumes a stopped one.
func (e *Engine) Toggle() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	hasSession, running := e.session != nil, e.running
	e.mu.Unlock()

	if !hasSession {
		return e.report(errNoActiveSession)
	}

	if running {
		return e.pause()
	}

	return e.resume()
}

// Pause stops the countdown and marks the session as paused.
func (e *Engine) Pause() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	return e.pause()
}

// Resume (re)starts the countdown of the current session.
func (e *Engine) Resume() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	return e.resume()
}

// CompleteSession ends the current session. No automatic phase switch
// happens afterwards.
func (e *Engine) CompleteSession() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()

	if e.session == nil {
		e.mu.Unlock()
		return e.report(errNoActiveSession)
	}

	if e.manuallyCompleted {
		e.mu.Unlock()
		return nil
	}

	e.manuallyCompleted = true
	e.running = false
	e.mu.Unlock()

	e.stopCountdown()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.publish()

	e.phase = models.Completed
	e.completed = true

	end := e.now().UnixMilli()

	sess := *e.session
	sess.EndTime = &end
	sess.IsCompleted = true
	sess.CurrentPhase = models.Completed

	slog.Info(
		"session completed",
		slog.Int("session_id", sess.ID),
		slog.Int("completed_cycles", e.cycles),
	)

	return e.persist(sess)
}

// ResetTimer pauses the countdown and reloads the full duration of the
// current focus or rest phase.
func (e *Engine) ResetTimer() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	err := e.pause()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.publish()

	if e.active == models.Focus {
		e.timeLeft = e.focusSeconds
	} else {
		e.timeLeft = e.restSeconds
	}

	return err
}

// SkipPhase ends the current phase early. A running countdown switches
// phase on its next tick; a stopped one does so once it is resumed.
func (e *Engine) SkipPhase() {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.publish()

	e.timeLeft = 0
}

// ResetSession pauses the countdown and forgets the current session. The
// stored session record is kept.
func (e *Engine) ResetSession() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	err := e.pause()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.publish()

	e.session = nil
	e.timeLeft = 0
	e.phase = models.Focus
	e.active = models.Focus
	e.completed = false
	e.cycles = 0
	e.manuallyCompleted = false

	return err
}

// ClearError empties the published error message.
func (e *Engine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.err = ""
	e.publish()
}

// Close stops the countdown goroutine, if any.
func (e *Engine) Close() {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.stopCountdown()
}

func (e *Engine) pause() error {
	e.stopCountdown()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.publish()

	e.running = false

	// a completed session keeps its final phase
	if e.session == nil || e.manuallyCompleted {
		return nil
	}

	sess := *e.session
	sess.CurrentPhase = models.Paused

	if err := e.persist(sess); err != nil {
		return err
	}

	e.phase = models.Paused

	return nil
}

func (e *Engine) resume() error {
	e.mu.Lock()

	if e.session == nil {
		e.mu.Unlock()
		return e.report(errNoActiveSession)
	}

	if e.manuallyCompleted {
		e.mu.Unlock()
		return e.report(errSessionCompleted)
	}

	e.mu.Unlock()

	e.stopCountdown()

	e.mu.Lock()

	e.running = true

	var err error

	if e.phase == models.Paused {
		e.phase = e.active

		sess := *e.session
		sess.CurrentPhase = e.active
		err = e.persist(sess)
	}

	e.publish()
	e.mu.Unlock()

	e.startCountdown()

	return err
}

// startCountdown launches the countdown goroutine. The previous one, if
// any, must already have been stopped.
func (e *Engine) startCountdown() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	e.cancel, e.done = cancel, done

	go e.countdown(ctx, done)
}

// stopCountdown cancels the countdown goroutine and waits for it to exit.
// It must not be called with mu held.
func (e *Engine) stopCountdown() {
	if e.cancel == nil {
		return
	}

	e.cancel()
	<-e.done

	e.cancel, e.done = nil, nil
}

func (e *Engine) countdown(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !e.advance(ctx) {
			return
		}
	}
}

// advance counts down one second and switches phase once the current one
// has run out. It reports whether the countdown should keep going.
func (e *Engine) advance(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	// a tick that fired while an operation was cancelling the countdown
	// must not touch the state
	if ctx.Err() != nil || !e.running || e.manuallyCompleted {
		return false
	}

	if e.timeLeft > 0 {
		e.timeLeft--
	}

	if e.timeLeft == 0 {
		e.switchPhase()
	}

	e.publish()

	return true
}

// switchPhase moves from focus to rest or from rest back to focus, counting
// a cycle, and reloads the countdown. It must be called with mu held.
func (e *Engine) switchPhase() {
	switch e.active {
	case models.Focus:
		e.active = models.Rest
		e.timeLeft = e.restSeconds
	case models.Rest:
		e.cycles++
		e.active = models.Focus
		e.timeLeft = e.focusSeconds
	}

	e.phase = e.active

	slog.Info(
		"phase switched",
		slog.String("phase", string(e.phase)),
		slog.Int("completed_cycles", e.cycles),
	)

	if e.session == nil {
		return
	}

	sess := *e.session
	sess.CurrentPhase = e.phase

	_ = e.persist(sess)
}

// persist stores sess and adopts it as the current session. It must be
// called with mu held.
func (e *Engine) persist(sess models.FocusSession) error {
	if err := e.repo.Update(sess); err != nil {
		return e.fail(errPersistSession.Wrap(err))
	}

	e.session = &sess

	return nil
}

// fail records err as the current error. It must be called with mu held.
func (e *Engine) fail(err error) error {
	slog.Error("timer operation failed", slog.Any("error", err))

	e.err = err.Error()

	return err
}

// report records err as the current error and publishes it.
func (e *Engine) report(err error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fail(err)
	e.publish()

	return err
}

// publish pushes the state to the observable cells. It must be called with
// mu held.
func (e *Engine) publish() {
	e.TimeLeft.Set(e.timeLeft)
	e.Running.Set(e.running)
	e.Phase.Set(e.phase)
	e.SessionCompleted.Set(e.completed)
	e.CompletedCycles.Set(e.cycles)
	e.Err.Set(e.err)
	e.Current.Set(e.session)
}
