package app

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errInvalidDate = &apperr.Error{
		Message: "invalid --%s date",
	}

	errInvalidRange = &apperr.Error{
		Message: "--until must not be earlier than --since",
	}

	errNoSettings = &apperr.Error{
		Message: "nothing to change: pass at least one of --session, --break, --long-break or --light-mode",
	}
)
