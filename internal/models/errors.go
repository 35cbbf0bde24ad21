package models

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errEmptyTitle = &apperr.Error{
		Message: "focus title cannot be empty",
	}

	errInvalidDuration = &apperr.Error{
		Message: "focus and rest durations must be greater than zero",
	}

	errInvalidTotal = &apperr.Error{
		Message: "total sessions must be at least 1",
	}
)
