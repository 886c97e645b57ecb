package status

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errWriteStatus = &apperr.Error{
		Message: "unable to write status file",
	}

	errParseStatus = &apperr.Error{
		Message: "status file %s is corrupt",
	}
)
