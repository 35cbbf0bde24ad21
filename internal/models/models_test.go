package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusModelValidate(t *testing.T) {
	cases := []struct {
		Name  string
		Model FocusModel
		Err   error
	}{
		{"valid", NewFocusModel("Deep work", 25, 5), nil},
		{"empty title", NewFocusModel("  ", 25, 5), errEmptyTitle},
		{"zero focus", NewFocusModel("a", 0, 5), errInvalidDuration},
		{"negative rest", NewFocusModel("a", 25, -1), errInvalidDuration},
		{"no target", FocusModel{Title: "a", FocusDuration: 1, RestDuration: 1}, errInvalidTotal},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Model.Validate()
			if tc.Err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.Err)
		})
	}
}

func TestFocusModelComplete(t *testing.T) {
	m := FocusModel{TotalSessions: 2}

	m = m.Complete()
	assert.Equal(t, 1, m.CompletedSessions)
	assert.False(t, m.IsCompleted)

	m = m.Complete()
	assert.Equal(t, 2, m.CompletedSessions)
	assert.True(t, m.IsCompleted)
}

func TestFocusSessionActive(t *testing.T) {
	s := FocusSession{CurrentPhase: Focus}
	assert.True(t, s.Active())
	assert.True(t, s.Ended().IsZero())

	end := int64(1700000000000)
	s.EndTime = &end
	s.IsCompleted = true

	assert.False(t, s.Active())
	assert.Equal(t, end, s.Ended().UnixMilli())
}
