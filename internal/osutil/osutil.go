// Package osutil holds platform details shared by the focusflow packages
package osutil

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

const Windows = "windows"

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// Interactive reports whether stdin is attached to a terminal, so that
// prompts can be shown.
func Interactive() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DefaultEditor is the editor used when neither VISUAL nor EDITOR is set.
func DefaultEditor() string {
	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
