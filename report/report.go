// Package report prints command outcomes to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Success prints a confirmation message.
func Success(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

// Info prints a neutral message.
func Info(format string, args ...any) {
	pterm.Info.Printfln(format, args...)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
