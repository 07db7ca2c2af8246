package mustache

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrUnbalancedTags   = NewError("unbalanced tags")
	ErrMaxDepthExceeded = NewError("maximum section depth exceeded")
	ErrPartialNotFound  = NewError("partial not found")
	ErrInvalidAccessor  = NewError("invalid accessor")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging, returning a new
// Error so the sentinel values remain immutable.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// WithPosition attaches a source [Position] to the error.
func (e *Error) WithPosition(pos Position) *Error {
	return e.With(
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
	)
}

// LexError wraps a lexer failure with source-snippet formatting.
type LexError struct {
	Cause  *Error
	Source string
	Pos    Position
}

// NewLexError creates a LexError rooted at the given source position.
func NewLexError(cause *Error, source string, pos Position) *LexError {
	return &LexError{Cause: cause, Source: source, Pos: pos}
}

// Error implements the error interface, rendering a caret-annotated source
// snippet pointing at the failing position.
func (e *LexError) Error() string {
	if e.Source == "" {
		return e.Cause.Error()
	}

	var buf strings.Builder

	buf.WriteString(e.Cause.Error())
	buf.WriteString(" at line ")
	buf.WriteString(strconv.Itoa(e.Pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Pos.Column))
	buf.WriteString(":\n")

	lines := strings.Split(e.Source, "\n")

	if e.Pos.Line > 0 && e.Pos.Line <= len(lines) {
		line := lines[e.Pos.Line-1]
		lineNum := strconv.Itoa(e.Pos.Line)

		buf.WriteString("  ")
		buf.WriteString(lineNum)
		buf.WriteString(" | ")
		buf.WriteString(line)
		buf.WriteByte('\n')

		padding := strings.Repeat(" ", len(lineNum)+5)
		if e.Pos.Column > 0 {
			padding += strings.Repeat(" ", e.Pos.Column-1)
		}

		buf.WriteString(padding)
		buf.WriteString("^")
	}

	return buf.String()
}

// Unwrap returns the wrapped cause.
func (e *LexError) Unwrap() error { return e.Cause }
