package store

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errRunning = &apperr.Error{
		Message: "is pomo already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database at %s",
	}

	errDecodeInterval = &apperr.Error{
		Message: "corrupt interval record %s",
	}
)
