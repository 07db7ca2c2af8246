package log

import "strconv"

// String returns the lowercase name of the level, e.g. "trace" or "warn".
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		if l < LevelDebug {
			return "trace" + offsetSuffix(int(l)-int(LevelTrace))
		}

		return "debug" + offsetSuffix(int(l)-int(LevelDebug))
	}
}

// String returns the lowercase name of the format, e.g. "json" or "text".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "json"
	}
}

// offsetSuffix renders a signed integer offset as "+N" or "-N", or "" for 0.
// Mirrors the suffix slog.Level itself appends for intermediate levels.
func offsetSuffix(n int) string {
	switch {
	case n == 0:
		return ""
	case n > 0:
		return "+" + strconv.Itoa(n)
	default:
		return strconv.Itoa(n)
	}
}
