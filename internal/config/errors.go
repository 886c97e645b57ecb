package config

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "config file %s contains invalid values",
	}

	errInvalidInterval = &apperr.Error{
		Message: "%s must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q (must be debug, info, warn or error)",
	}
)
