// Package stats summarises focus models and the sessions run against them
package stats

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
)

const (
	barChartChar  = "▇"
	uncategorized = "uncategorized"
	dayKeyFormat  = "2006-01-02"
)

// Stats is the summary of a reporting period.
type Stats struct {
	StartTime  time.Time                `json:"start_time"`
	EndTime    time.Time                `json:"end_time"`
	Categories map[string]time.Duration `json:"categories"`
	Daily      map[string]time.Duration `json:"daily"`
	TotalTime  time.Duration            `json:"total_time"`
	Used       int                      `json:"focus_models"`
	Done       int                      `json:"focus_models_done"`
	Completed  int                      `json:"sessions_completed"`
	Abandoned  int                      `json:"sessions_abandoned"`
}

// focusTime is the time a completed session spent counting down.
func focusTime(s *models.FocusSession) time.Duration {
	if s.EndTime == nil || *s.EndTime < s.StartTime {
		return 0
	}

	ms := *s.EndTime - s.StartTime - s.PausedDuration
	if ms < 0 {
		return 0
	}

	return time.Duration(ms) * time.Millisecond
}

// Compute summarises the sessions started within [start, end]. A zero start
// reaches back to the first session.
func Compute(
	focusModels []models.FocusModel,
	sessions []models.FocusSession,
	start, end time.Time,
) Stats {
	s := Stats{
		StartTime:  start,
		EndTime:    end,
		Categories: make(map[string]time.Duration),
		Daily:      make(map[string]time.Duration),
	}

	category := make(map[int]string, len(focusModels))

	for i := range focusModels {
		m := focusModels[i]

		category[m.ID] = m.Category

		if m.IsCompleted {
			s.Done++
		}
	}

	s.Used = len(focusModels)

	for i := range sessions {
		sess := &sessions[i]
		started := timeutil.FromMillis(sess.StartTime)

		if started.Before(start) || started.After(end) {
			continue
		}

		if s.StartTime.IsZero() || started.Before(s.StartTime) {
			s.StartTime = timeutil.RoundToStart(started)
		}

		if !sess.IsCompleted {
			s.Abandoned++
			continue
		}

		s.Completed++

		d := focusTime(sess)
		s.TotalTime += d

		name := category[sess.FocusID]
		if name == "" {
			name = uncategorized
		}

		s.Categories[name] += d
		s.Daily[started.Format(dayKeyFormat)] += d
	}

	return s
}

// formatDuration renders d as hours and minutes.
func formatDuration(d time.Duration) string {
	hrs, mins := timeutil.MinsToHoursAndMins(timeutil.Round(d.Minutes()))

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

func (s *Stats) summary() string {
	var b strings.Builder

	b.WriteString(ui.Cyan("Summary") + "\n")
	fmt.Fprintf(&b, "Time focused: %s\n", ui.Green(formatDuration(s.TotalTime)))
	fmt.Fprintln(&b, "Sessions completed:", ui.Green(s.Completed))
	fmt.Fprintln(&b, "Sessions abandoned:", ui.Green(s.Abandoned))
	fmt.Fprintf(&b, "Focus models done: %s\n", ui.Green(fmt.Sprintf("%d/%d", s.Done, s.Used)))

	return b.String()
}

func (s *Stats) categories() string {
	if len(s.Categories) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n" + ui.Cyan("Categories") + "\n")

	names := slices.SortedFunc(maps.Keys(s.Categories), func(a, c string) int {
		return cmp.Or(
			cmp.Compare(s.Categories[c], s.Categories[a]),
			cmp.Compare(a, c),
		)
	})

	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, ui.Green(formatDuration(s.Categories[name])))
	}

	return b.String()
}

func (s *Stats) dailyChart() string {
	if len(s.Daily) == 0 {
		return ""
	}

	days := slices.Sorted(maps.Keys(s.Daily))

	bars := make(pterm.Bars, 0, len(days))

	for _, day := range days {
		date, _ := time.Parse(dayKeyFormat, day)

		bars = append(bars, pterm.Bar{
			Label: date.Format("Jan 02, 2006"),
			Value: timeutil.Round(s.Daily[day].Minutes()),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return ""
	}

	return "\n" + ui.Cyan("Daily breakdown (minutes)") + chart
}

// Render returns the report printed by the stats command.
func (s *Stats) Render() string {
	header := fmt.Sprintf(
		"%s %s - %s\n\n",
		ui.Magenta("Reporting period:"),
		s.StartTime.Format("January 02, 2006"),
		s.EndTime.Format("January 02, 2006"),
	)

	return header + s.summary() + s.categories() + s.dailyChart()
}
