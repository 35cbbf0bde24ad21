package config

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %s (must be bolt, sqlite, or memory)",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes, got %d",
	}

	errInvalidTick = &apperr.Error{
		Message: "timer tick must be positive, got %v",
	}

	errInvalidAmbientSound = &apperr.Error{
		Message: "ambient sound id cannot be negative, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log max_size must be at least 1 megabyte, got %d",
	}
)
