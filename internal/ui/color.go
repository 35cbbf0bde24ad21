// Package ui holds the colour and table helpers shared by the commands
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// DarkTheme selects the light variants of the colours.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// Phase renders a session phase in its colour.
func Phase(p models.Phase) string {
	switch p {
	case models.Focus:
		return Green(p)
	case models.Rest:
		return Cyan(p)
	case models.Paused:
		return Yellow(p)
	case models.Completed:
		return Magenta(p)
	}

	return string(p)
}
