package timer

import "github.com/ayoisaiah/pomo/internal/apperr"

var errUnknownMode = &apperr.Error{
	Message: "unknown timer mode: %s",
}
