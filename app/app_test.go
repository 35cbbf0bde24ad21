package app

import (
	"bytes"
	"encoding/json"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/repository"
	"github.com/ayoisaiah/focusflow/store"
)

type fixture struct {
	dir    string
	dbPath string
	out    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	interactive = func() bool { return false }

	out := &bytes.Buffer{}
	stdout := config.Stdout
	config.Stdout = out

	t.Cleanup(func() {
		config.Stdout = stdout
	})

	dir := t.TempDir()

	return &fixture{
		dir:    dir,
		dbPath: filepath.Join(dir, "focusflow.db"),
		out:    out,
	}
}

func (f *fixture) run(args ...string) error {
	base := []string{
		"focusflow",
		"--config", filepath.Join(f.dir, "config.yml"),
		"--log", filepath.Join(f.dir, "focusflow.log"),
		"--db", f.dbPath,
		"--driver", config.DriverSQLite,
		"--no-color",
	}

	return Get().Run(append(base, args...))
}

// open returns a client for the fixture database. It must be closed before
// the app runs again.
func (f *fixture) open(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.Open(config.DriverSQLite, f.dbPath)
	require.NoError(t, err)

	return db
}

func (f *fixture) seedModels(t *testing.T, list ...models.FocusModel) {
	t.Helper()

	db := f.open(t)
	defer db.Close()

	repo := repository.NewFocusRepository(db)

	for _, m := range list {
		_, err := repo.Insert(m)
		require.NoError(t, err)
	}
}

func TestModelAdd(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(
		"model", "add",
		"--title", "Deep work",
		"-c", "Work",
		"--focus", "30",
		"--rest", "10",
		"-n", "3",
	))

	db := f.open(t)
	defer db.Close()

	list, err := repository.NewFocusRepository(db).List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	got.CreatedAt = 0

	want := models.FocusModel{
		ID:            1,
		Title:         "Deep work",
		Category:      "Work",
		FocusDuration: 30,
		RestDuration:  10,
		TotalSessions: 3,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("model add mismatch (-want +got):\n%s", diff)
	}
}

func TestModelAddUsesConfigDefaults(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run("model", "add", "--title", "Reading"))

	db := f.open(t)
	defer db.Close()

	m, ok, err := repository.NewFocusRepository(db).GetByID(1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 25, m.FocusDuration)
	assert.Equal(t, 5, m.RestDuration)
	assert.Equal(t, 1, m.TotalSessions)
}

func TestModelAddWithoutTitle(t *testing.T) {
	f := newFixture(t)

	err := f.run("model", "add")
	require.Error(t, err)
}

func TestModelListJSON(t *testing.T) {
	f := newFixture(t)

	f.seedModels(t,
		models.NewFocusModel("one", 25, 5),
		models.NewFocusModel("two", 50, 10),
	)

	require.NoError(t, f.run("model", "list", "--json"))

	var list []models.FocusModel

	require.NoError(t, json.Unmarshal(f.out.Bytes(), &list))
	require.Len(t, list, 2)

	titles := []string{list[0].Title, list[1].Title}
	assert.ElementsMatch(t, []string{"one", "two"}, titles)
}

func TestModelEdit(t *testing.T) {
	f := newFixture(t)

	f.seedModels(t, models.NewFocusModel("draft", 25, 5))

	require.NoError(t, f.run("model", "edit", "--title", "final", "-n", "4", "1"))

	db := f.open(t)
	defer db.Close()

	m, ok, err := repository.NewFocusRepository(db).GetByID(1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "final", m.Title)
	assert.Equal(t, 4, m.TotalSessions)
	assert.Equal(t, 25, m.FocusDuration)
}

func TestModelDelete(t *testing.T) {
	f := newFixture(t)

	f.seedModels(t, models.NewFocusModel("gone", 25, 5))

	require.NoError(t, f.run("model", "delete", "--yes", "1"))

	err := f.run("model", "show", "1")
	assert.ErrorIs(t, err, errModelNotFound)
}

func TestModelIDErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "missing id",
			args: []string{"model", "show"},
			want: errMissingID,
		},
		{
			name: "not a number",
			args: []string{"model", "show", "abc"},
			want: errInvalidID,
		},
		{
			name: "zero",
			args: []string{"model", "edit", "0"},
			want: errInvalidID,
		},
		{
			name: "unknown model",
			args: []string{"model", "delete", "-y", "42"},
			want: errModelNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.run(tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCategoryAdd(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run("category", "add", "Side", "project"))

	err := f.run("category", "add", "side PROJECT")
	assert.ErrorIs(t, err, errCategoryExists)

	err = f.run("category", "add", "reading")
	assert.ErrorIs(t, err, errCategoryExists)

	err = f.run("category", "add", "  ")
	assert.ErrorIs(t, err, errMissingName)

	db := f.open(t)
	defer db.Close()

	list, err := repository.NewCategoryRepository(db).List()
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name)
	}

	assert.Contains(t, names, "Side project")
	assert.Len(t, names, len(store.DefaultCategories())+1)
}

func TestCategoryDelete(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run("category", "delete", "1"))

	err := f.run("category", "delete", "1")
	assert.ErrorIs(t, err, errCategoryNotFound)
}

func TestSortCategories(t *testing.T) {
	list := []models.Category{
		{ID: 1, Name: "week 10"},
		{ID: 2, Name: "Week 2"},
		{ID: 3, Name: "art"},
		{ID: 4, Name: "Week 1"},
	}

	sortCategories(list)

	got := make([]int, len(list))
	for i := range list {
		got[i] = list[i].ID
	}

	assert.Equal(t, []int{3, 4, 2, 1}, got)
}

func TestStartErrors(t *testing.T) {
	f := newFixture(t)

	done := models.NewFocusModel("done", 25, 5)
	done.IsCompleted = true
	done.CompletedSessions = 1

	f.seedModels(t, done)

	err := f.run("start", "1")
	assert.ErrorIs(t, err, errModelCompleted)

	err = f.run("start", "2")
	assert.ErrorIs(t, err, errModelNotFound)

	err = f.run("start")
	assert.ErrorIs(t, err, errMissingID)
}

func TestHistoryJSON(t *testing.T) {
	f := newFixture(t)

	f.seedModels(t, models.NewFocusModel("history", 25, 5))

	db := f.open(t)
	repo := repository.NewSessionRepository(db)

	for _, start := range []int64{1000, 3000, 2000} {
		_, err := repo.Insert(models.FocusSession{
			FocusID:      1,
			StartTime:    start,
			CurrentPhase: models.Focus,
		})
		require.NoError(t, err)
	}

	require.NoError(t, db.Close())

	require.NoError(t, f.run("history", "--json"))

	var entries []repository.HistoryEntry

	require.NoError(t, json.Unmarshal(f.out.Bytes(), &entries))
	require.Len(t, entries, 3)

	for i, want := range []int64{3000, 2000, 1000} {
		assert.Equal(t, want, entries[i].Session.StartTime)
		require.NotNil(t, entries[i].Focus)
		assert.Equal(t, "history", entries[i].Focus.Title)
	}
}

func TestInvalidSince(t *testing.T) {
	f := newFixture(t)

	err := f.run("history", "--since", "not a date at all")
	assert.ErrorIs(t, err, errInvalidSince)
}

func TestStatsJSON(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run("stats", "--json"))

	var got map[string]any

	require.NoError(t, json.Unmarshal(f.out.Bytes(), &got))
	assert.Contains(t, got, "total_time")
}

func TestCheck(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, f.run("check"))
}

func TestDryRunLeavesDatabaseUntouched(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run("--dry-run", "model", "add", "--title", "ghost"))

	db := f.open(t)
	defer db.Close()

	list, err := repository.NewFocusRepository(db).List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseSince(t *testing.T) {
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	now = func() time.Time { return fixed }

	t.Cleanup(func() {
		now = time.Now
	})

	app := &cli.App{}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("since", "", "")

	ctx := cli.NewContext(app, set, nil)

	fallback := fixed.Add(-time.Hour)

	got, err := parseSince(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	require.NoError(t, set.Set("since", "2024-03-01"))

	got, err = parseSince(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "b", firstNonEmptyString("", "b", "c"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}
