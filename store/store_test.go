package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/testutil"
)

type GoldenCase struct {
	GoldenFile string
	Snapshot   []byte
}

func (g GoldenCase) Output() (out []byte, name string) {
	return g.Snapshot, g.GoldenFile
}

// clients returns a fresh client for every backend implementation.
func clients(t *testing.T) map[string]*Client {
	t.Helper()

	dir := t.TempDir()

	bolt, err := OpenBolt(filepath.Join(dir, "focusflow.db"))
	require.NoError(t, err)

	sqlite, err := OpenSQLite(filepath.Join(dir, "focusflow.sqlite"))
	require.NoError(t, err)

	m := map[string]*Client{
		DriverMemory: New(NewMemory()),
		DriverBolt:   New(bolt),
		DriverSQLite: New(sqlite),
	}

	t.Cleanup(func() {
		for _, c := range m {
			_ = c.Close()
		}
	})

	return m
}

func ptr[T any](v T) *T {
	return &v
}

func sampleSessions() []models.FocusSession {
	return []models.FocusSession{
		{
			ID:           1,
			FocusID:      1,
			StartTime:    1700000000000,
			CurrentPhase: models.Focus,
		},
		{
			ID:           2,
			FocusID:      1,
			StartTime:    1700000000000,
			EndTime:      ptr(int64(1700000060000)),
			IsCompleted:  true,
			CurrentPhase: models.Completed,
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			focus := []models.FocusModel{
				{
					ID:            1,
					Title:         "Deep work",
					Category:      "Work",
					FocusDuration: 50,
					RestDuration:  10,
					TotalSessions: 3,
					CreatedAt:     time.Now().UnixMilli(),
				},
			}
			categories := []models.Category{{ID: 9, Name: "Chess"}}
			sounds := []models.AmbientSound{{ID: 1, Name: "Rain", FileURL: "rain.mp3"}}

			require.NoError(t, Save(c, KeyFocusModels, focus))
			require.NoError(t, Save(c, KeyCategories, categories))
			require.NoError(t, Save(c, KeyAmbientSounds, sounds))
			require.NoError(t, Save(c, KeyFocusSessions, sampleSessions()))

			gotFocus, err := Load[models.FocusModel](c, KeyFocusModels)
			require.NoError(t, err)

			gotCategories, err := Load[models.Category](c, KeyCategories)
			require.NoError(t, err)

			gotSounds, err := Load[models.AmbientSound](c, KeyAmbientSounds)
			require.NoError(t, err)

			gotSessions, err := Load[models.FocusSession](c, KeyFocusSessions)
			require.NoError(t, err)

			if diff := cmp.Diff(focus, gotFocus); diff != "" {
				t.Errorf("focus models mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(categories, gotCategories); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(sounds, gotSounds); diff != "" {
				t.Errorf("sounds mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(sampleSessions(), gotSessions); diff != "" {
				t.Errorf("sessions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingKeys(t *testing.T) {
	c := New(NewMemory())

	focus, err := Load[models.FocusModel](c, KeyFocusModels)
	require.NoError(t, err)
	assert.Empty(t, focus)
	assert.NotNil(t, focus)

	sessions, err := Load[models.FocusSession](c, KeyFocusSessions)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	categories, err := Load[models.Category](c, KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories(), categories)

	sounds, err := Load[models.AmbientSound](c, KeyAmbientSounds)
	require.NoError(t, err)
	assert.Equal(t, DefaultAmbientSounds(), sounds)
}

func TestLoadCorruptValue(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{
				KeyFocusModels,
				KeyCategories,
				KeyAmbientSounds,
				KeyFocusSessions,
			} {
				require.NoError(t, c.backend.Put(key, []byte(`{"not": "a list"`)))
			}

			focus, err := Load[models.FocusModel](c, KeyFocusModels)
			require.NoError(t, err)
			assert.Empty(t, focus)

			sessions, err := Load[models.FocusSession](c, KeyFocusSessions)
			require.NoError(t, err)
			assert.Empty(t, sessions)

			categories, err := Load[models.Category](c, KeyCategories)
			require.NoError(t, err)
			assert.Equal(t, DefaultCategories(), categories)

			sounds, err := Load[models.AmbientSound](c, KeyAmbientSounds)
			require.NoError(t, err)
			assert.Equal(t, DefaultAmbientSounds(), sounds)

			assert.True(t, c.ValidateIntegrity())
		})
	}
}

func TestSaveEmptyList(t *testing.T) {
	c := New(NewMemory())

	require.NoError(t, Save[models.Category](c, KeyCategories, nil))

	raw, err := c.backend.Get(KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	// an explicitly emptied list is not replaced by the defaults
	categories, err := Load[models.Category](c, KeyCategories)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestSerializedLayout(t *testing.T) {
	c := New(NewMemory())

	require.NoError(t, Save(c, KeyFocusSessions, sampleSessions()))
	require.NoError(t, Save(c, KeyFocusModels, []models.FocusModel{
		{
			ID:            1,
			Title:         "Deep work",
			Category:      "Work",
			Goals:         "ship the release",
			FocusDuration: 25,
			RestDuration:  5,
			TotalSessions: 1,
			CreatedAt:     1700000000000,
		},
	}))

	for _, key := range []string{KeyFocusSessions, KeyFocusModels} {
		t.Run(key, func(t *testing.T) {
			raw, err := c.backend.Get(key)
			require.NoError(t, err)

			testutil.CompareGoldenFile(t, GoldenCase{
				GoldenFile: key,
				Snapshot:   raw,
			})
		})
	}
}

func TestCounters(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			id, err := c.NextID(KeyNextFocusID)
			require.NoError(t, err)
			assert.Equal(t, 1, id)

			// NextID does not mutate
			id, err = c.NextID(KeyNextFocusID)
			require.NoError(t, err)
			assert.Equal(t, 1, id)

			require.NoError(t, c.IncrementID(KeyNextFocusID))

			id, err = c.NextID(KeyNextFocusID)
			require.NoError(t, err)
			assert.Equal(t, 2, id)

			raw, err := c.backend.Get(KeyNextFocusID)
			require.NoError(t, err)
			assert.Equal(t, "2", string(raw))

			// counters are independent
			id, err = c.NextID(KeyNextSessionID)
			require.NoError(t, err)
			assert.Equal(t, 1, id)

			for want := 2; want <= 4; want++ {
				got, err := c.AllocateID(KeyNextFocusID)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			id, err = c.NextID(KeyNextFocusID)
			require.NoError(t, err)
			assert.Equal(t, 5, id)
		})
	}
}

func TestMalformedCounter(t *testing.T) {
	c := New(NewMemory())

	require.NoError(t, c.backend.Put(KeyNextSessionID, []byte("eleven")))

	id, err := c.NextID(KeyNextSessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	require.NoError(t, c.IncrementID(KeyNextSessionID))

	id, err = c.NextID(KeyNextSessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

type failingBackend struct {
	MemoryBackend
}

var errDisk = errors.New("disk unavailable")

func (f *failingBackend) Get(string) ([]byte, error) {
	return nil, errDisk
}

func (f *failingBackend) Put(string, []byte) error {
	return errDisk
}

func (f *failingBackend) Update(string, func([]byte) ([]byte, error)) error {
	return errDisk
}

func TestBackendFailures(t *testing.T) {
	c := New(&failingBackend{})

	assert.False(t, c.ValidateIntegrity())

	categories, err := Load[models.Category](c, KeyCategories)
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, err, errReadList)
	assert.Equal(t, DefaultCategories(), categories)

	err = Save(c, KeyFocusModels, []models.FocusModel{})
	assert.ErrorIs(t, err, errWriteList)

	_, err = c.AllocateID(KeyNextFocusID)
	assert.ErrorIs(t, err, errWriteCounter)

	err = c.IncrementID(KeyNextFocusID)
	assert.ErrorIs(t, err, errDisk)
}

func TestSubscribe(t *testing.T) {
	c := New(NewMemory())

	ch, cancel := c.Subscribe(KeyCategories)
	defer cancel()

	other, cancelOther := c.Subscribe(KeyFocusModels)
	defer cancelOther()

	require.NoError(t, Save(c, KeyCategories, DefaultCategories()))
	require.NoError(t, Save(c, KeyCategories, DefaultCategories()))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}

	select {
	case <-other:
		t.Fatal("unrelated key must not be signalled")
	default:
	}

	cancel()

	require.NoError(t, Save(c, KeyCategories, DefaultCategories()))

	select {
	case <-ch:
		t.Fatal("cancelled subscription must not be signalled")
	default:
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("postgres", "")
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestBoltSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusflow.db")

	c, err := Open(DriverBolt, path)
	require.NoError(t, err)

	defer c.Close()

	_, err = OpenBolt(path)
	assert.ErrorIs(t, err, errFocusRunning)
}
