package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/models"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var buf bytes.Buffer

	err := PrintTable(&buf, [][]string{
		{"ID", "NAME"},
		{"1", "Study"},
		{"2", "Work"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "Work")
}

func TestPhase(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	for _, p := range []models.Phase{
		models.Focus,
		models.Rest,
		models.Paused,
		models.Completed,
	} {
		assert.Equal(t, string(p), Phase(p))
	}
}
