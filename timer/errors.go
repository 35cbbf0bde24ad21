package timer

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errInvalidDuration = &apperr.Error{
		Message: "invalid duration values",
	}

	errNoActiveSession = &apperr.Error{
		Message: "no active session",
	}

	errSessionCompleted = &apperr.Error{
		Message: "session already completed",
	}

	errStartSession = &apperr.Error{
		Message: "unable to start session",
	}

	errPersistSession = &apperr.Error{
		Message: "unable to save session",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errPlaySound = &apperr.Error{
		Message: "unable to play %s",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}
)
