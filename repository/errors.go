package repository

import "github.com/ayoisaiah/focusflow/internal/apperr"

var errFocusNotFound = &apperr.Error{
	Message: "focus model %d does not exist",
}
