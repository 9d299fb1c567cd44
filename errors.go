package parsec

import (
	"errors"
	"fmt"
)

// Severity classifies an ErrorMessage
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarn
	SeverityMessage
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warning"
	case SeverityMessage:
		return "message"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ErrorMessage describes a committed parse error. It implements error so
// that callers can hand it straight back to their own callers.
type ErrorMessage struct {
	Severity Severity
	Text     string
	Begin    Position
	End      Position
}

// NewErrorMessage creates an ErrorMessage spanning begin to end
func NewErrorMessage(severity Severity, text string, begin, end Position) *ErrorMessage {
	return &ErrorMessage{
		Severity: severity,
		Text:     text,
		Begin:    begin,
		End:      end,
	}
}

func (m *ErrorMessage) Error() string {
	if m.Begin == m.End {
		return fmt.Sprintf("%s: %s: %s", m.Begin, m.Severity, m.Text)
	}
	return fmt.Sprintf("%s-%s: %s: %s", m.Begin, m.End, m.Severity, m.Text)
}

// The following errors indicate a mistake in the way a parser was put
// together, rather than a problem with the input. They are raised with
// panic, wrapped with some context, and are never turned into a Reply.
var (
	ErrEndOfStream     = errors.New("parsec: no next token at end of input")
	ErrStartOfStream   = errors.New("parsec: no previous token at start of input")
	ErrFixedPointSet   = errors.New("parsec: fixed point already set")
	ErrFixedPointUnset = errors.New("parsec: fixed point used before being set")
	ErrNilParser       = errors.New("parsec: nil parser")
	ErrInvalidBounds   = errors.New("parsec: invalid repetition bounds")
	ErrEmptyLoop       = errors.New("parsec: repeated parser succeeded without consuming input")
)

func mustParser[T, V any](name string, p Parser[T, V]) {
	if p == nil {
		panic(fmt.Errorf("%w: %s", ErrNilParser, name))
	}
}
