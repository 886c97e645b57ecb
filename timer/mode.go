package timer

// Mode determines which configured length governs the current interval.
type Mode int

const (
	Session Mode = iota
	Break
)

// longBreakEvery is the number of breaks per cycle. The last break of each
// cycle is doubled when long breaks are enabled.
const longBreakEvery = 4

func (m Mode) String() string {
	switch m {
	case Session:
		return "session"
	case Break:
		return "break"
	}

	return "unknown"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode previously encoded with MarshalText.
func (m *Mode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "session":
		*m = Session
	case "break":
		*m = Break
	default:
		return errUnknownMode.Fmt(string(b))
	}

	return nil
}

func (m Mode) toggle() Mode {
	if m == Session {
		return Break
	}

	return Session
}

// isLongBreak reports whether the break numbered count is a long one.
func isLongBreak(count int) bool {
	return count > 0 && count%longBreakEvery == 0
}
