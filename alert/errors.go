package alert

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errTone = &apperr.Error{
		Message: "unable to generate alert tone",
	}
)
