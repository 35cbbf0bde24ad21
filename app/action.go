package app

import (
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/osutil"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/report"
	"github.com/ayoisaiah/focusflow/repository"
	"github.com/ayoisaiah/focusflow/stats"
	"github.com/ayoisaiah/focusflow/timer"
)

// defaultStatsPeriod is how far back stats reach without --since.
const defaultStatsPeriod = 7 * 24 * time.Hour

var now = time.Now

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// sessionOptions resolves the screen options for a session from the config.
func (e *env) sessionOptions() (timer.ScreenOptions, error) {
	opts := timer.ScreenOptions{
		Cmd:       e.cfg.Settings.Cmd,
		Notify:    e.cfg.Settings.Notify,
		DarkTheme: e.cfg.Display.DarkTheme,
	}

	if e.cfg.Settings.AmbientSound == 0 {
		return opts, nil
	}

	sound, ok, err := e.sounds.GetByID(e.cfg.Settings.AmbientSound)
	if err != nil {
		return opts, err
	}

	if !ok {
		return opts, errSoundNotFound.Fmt(e.cfg.Settings.AmbientSound)
	}

	opts.SoundPath = e.soundPath(sound.FileURL)

	return opts, nil
}

// startAction runs a session for the focus model given as the first
// argument. The session screen blocks until the user quits.
func startAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	// subcommand flags are only visible from here
	if err = config.WithCLIConfig(ctx)(e.cfg); err != nil {
		return err
	}

	if err = e.cfg.Validate(); err != nil {
		return err
	}

	m, err := e.findModel(id)
	if err != nil {
		return err
	}

	if m.IsCompleted {
		return errModelCompleted.Fmt(id)
	}

	focusMins, restMins := m.FocusDuration, m.RestDuration

	if ctx.IsSet("focus") {
		focusMins = e.cfg.Timer.Focus
	}

	if ctx.IsSet("rest") {
		restMins = e.cfg.Timer.Rest
	}

	opts, err := e.sessionOptions()
	if err != nil {
		return err
	}

	engine := timer.New(e.sessions, timer.WithTick(e.cfg.Timer.Tick))
	defer engine.Close()

	if err = engine.StartSession(id, focusMins, restMins); err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"session started",
		slog.Int("focus_id", id),
		slog.Int("focus_minutes", focusMins),
		slog.Int("rest_minutes", restMins),
	)

	screen := timer.NewScreen(engine, e.focus, m, opts)

	_, err = tea.NewProgram(screen).Run()

	return err
}

// sessionsSince returns the sessions started at or after since, along with
// every focus model.
func (e *env) sessionsSince(
	since time.Time,
) ([]models.FocusSession, []models.FocusModel, error) {
	sessions, err := e.sessions.List()
	if err != nil {
		return nil, nil, err
	}

	focusModels, err := e.focus.List()
	if err != nil {
		return nil, nil, err
	}

	if since.IsZero() {
		return sessions, focusModels, nil
	}

	filtered := make([]models.FocusSession, 0, len(sessions))

	for i := range sessions {
		if !sessions[i].Started().Before(since) {
			filtered = append(filtered, sessions[i])
		}
	}

	return filtered, focusModels, nil
}

// parseSince reads the --since flag. An unset flag yields fallback.
func parseSince(ctx *cli.Context, fallback time.Time) (time.Time, error) {
	if !ctx.IsSet("since") {
		return fallback, nil
	}

	s := ctx.String("since")

	t, err := timeutil.FromStr(s, now())
	if err != nil {
		return time.Time{}, errInvalidSince.Fmt(s)
	}

	return t, nil
}

// historyAction lists past sessions with the focus model each belongs to.
func historyAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	since, err := parseSince(ctx, time.Time{})
	if err != nil {
		return err
	}

	sessions, focusModels, err := e.sessionsSince(since)
	if err != nil {
		return err
	}

	entries := repository.History(sessions, focusModels)

	if ctx.Bool("json") {
		return json.NewEncoder(config.Stdout).Encode(entries)
	}

	if len(entries) == 0 {
		report.Info(noSessionsMsg)
		return nil
	}

	return printHistoryTable(config.Stdout, entries)
}

// statsAction prints a summary of the sessions in the reporting period.
func statsAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	end := now()

	since, err := parseSince(
		ctx,
		timeutil.RoundToStart(end.Add(-defaultStatsPeriod)),
	)
	if err != nil {
		return err
	}

	sessions, focusModels, err := e.sessionsSince(since)
	if err != nil {
		return err
	}

	s := stats.Compute(focusModels, sessions, since, end)

	if ctx.Bool("json") {
		return json.NewEncoder(config.Stdout).Encode(s)
	}

	pterm.Fprintln(config.Stdout, s.Render())

	return nil
}

// checkAction reports whether every record list in the store decodes.
func checkAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	if !e.db.ValidateIntegrity() {
		return errIntegrity
	}

	report.Success("all records are readable")

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cmd := exec.Command(editor, envFrom(ctx).configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
