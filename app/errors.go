package app

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "an id argument is required",
	}

	errInvalidID = &apperr.Error{
		Message: "invalid id: %q (must be a positive number)",
	}

	errModelNotFound = &apperr.Error{
		Message: "focus model %d does not exist",
	}

	errModelCompleted = &apperr.Error{
		Message: "focus model %d is already completed",
	}

	errMissingName = &apperr.Error{
		Message: "a category name is required",
	}

	errCategoryExists = &apperr.Error{
		Message: "category %q already exists",
	}

	errCategoryNotFound = &apperr.Error{
		Message: "category %d does not exist",
	}

	errSoundNotFound = &apperr.Error{
		Message: "ambient sound %d does not exist",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value: %q",
	}

	errIntegrity = &apperr.Error{
		Message: "some records could not be read, see the log file for details",
	}

	errPromptModel = &apperr.Error{
		Message: "unable to read the focus model details",
	}
)
