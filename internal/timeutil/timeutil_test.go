package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		in         int
		mins, secs int
	}{
		{1500, 25, 0},
		{61, 1, 1},
		{59, 0, 59},
		{0, 0, 0},
		{-5, 0, 0},
	}

	for _, tc := range cases {
		m, s := SecsToMinsAndSecs(tc.in)
		assert.Equal(t, tc.mins, m, tc.in)
		assert.Equal(t, tc.secs, s, tc.in)
	}
}

func TestMinsToHoursAndMins(t *testing.T) {
	h, m := MinsToHoursAndMins(135)
	assert.Equal(t, 2, h)
	assert.Equal(t, 15, m)
}

func TestRoundToStartAndEnd(t *testing.T) {
	in := time.Date(2024, time.March, 4, 15, 4, 5, 6, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), RoundToStart(in))
	assert.Equal(t, time.Date(2024, time.March, 4, 23, 59, 59, 0, time.UTC), RoundToEnd(in))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2024-02-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 1, got.Day())

	got, err = FromStr("3 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Day())

	_, err = FromStr("not a date at all", now)
	require.Error(t, err)
}
