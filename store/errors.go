package store

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errFocusRunning = &apperr.Error{
		Message: "is focusflow already running? Only one instance can be active at a time",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the data store",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %s",
	}

	errReadList = &apperr.Error{
		Message: "unable to read %s",
	}

	errWriteList = &apperr.Error{
		Message: "unable to save %s",
	}

	errReadCounter = &apperr.Error{
		Message: "unable to read id counter %s",
	}

	errWriteCounter = &apperr.Error{
		Message: "unable to update id counter %s",
	}
)
