package timer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// notify sends a desktop notification. Failures are only logged.
func notify(title, msg string) {
	err := beeep.Notify(title, msg, "")
	if err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

func phaseMessage(p models.Phase) (title, msg string) {
	switch p {
	case models.Rest:
		return "Focus phase is finished", "Take a breather"
	case models.Focus:
		return "Rest phase is finished", "Time to focus again"
	case models.Completed:
		return "Session completed", "Nice work!"
	}

	return "", ""
}

// runSessionCmd executes the command configured to run after a session is
// completed.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}
