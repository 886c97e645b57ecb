package timeutil

import "github.com/ayoisaiah/pomo/internal/apperr"

var errParseDate = &apperr.Error{
	Message: "unable to parse date %q",
}
