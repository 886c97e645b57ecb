package settings

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errReadSettings = &apperr.Error{
		Message: "reading settings file failed",
	}

	errParseSettings = &apperr.Error{
		Message: "settings file %s is not valid YAML",
	}

	errWriteSettings = &apperr.Error{
		Message: "writing settings file failed",
	}

	errPrompt = &apperr.Error{
		Message: "settings prompt failed",
	}
)
