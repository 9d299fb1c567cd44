package parsec

import (
	"fmt"

	"github.com/lestrrat/go-parsec/internal/debug"
)

// Status is the outcome of applying a parser
type Status int

const (
	// StatusSuccess means the parser matched
	StatusSuccess Status = iota
	// StatusFailure means the parser did not match. Alternatives are
	// tried after a failure.
	StatusFailure
	// StatusError means the parser hit a committed error. No further
	// alternatives are tried.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Reply is the result of applying a parser to a Stream.
//
// On success, Stream is the node after the consumed input. On failure it
// is the node alternatives should resume from. On error it carries the
// node the error was reported at, and Message describes the error.
type Reply[T, V any] struct {
	status Status
	value  V
	stream *Stream[T]
	msg    *ErrorMessage
}

// Parser is a function from a stream to a Reply. Parsers must not keep
// state between calls: applying a parser to the same node twice must
// produce the same Reply.
type Parser[T, V any] func(*Stream[T]) Reply[T, V]

// Success creates a successful reply
func Success[T, V any](v V, s *Stream[T]) Reply[T, V] {
	return Reply[T, V]{status: StatusSuccess, value: v, stream: s}
}

// Failure creates a failed reply
func Failure[T, V any](s *Stream[T]) Reply[T, V] {
	return Reply[T, V]{status: StatusFailure, stream: s}
}

// Error creates an error reply
func Error[T, V any](s *Stream[T], msg *ErrorMessage) Reply[T, V] {
	return Reply[T, V]{status: StatusError, stream: s, msg: msg}
}

// Status returns the outcome of the parse
func (r Reply[T, V]) Status() Status { return r.status }

// IsSuccess returns true if the parser matched
func (r Reply[T, V]) IsSuccess() bool { return r.status == StatusSuccess }

// IsFailure returns true if the parser did not match
func (r Reply[T, V]) IsFailure() bool { return r.status == StatusFailure }

// IsError returns true if the parser hit a committed error
func (r Reply[T, V]) IsError() bool { return r.status == StatusError }

// Value returns the parsed value. It is the zero value unless the reply
// is a success.
func (r Reply[T, V]) Value() V { return r.value }

// Stream returns the node the reply refers to
func (r Reply[T, V]) Stream() *Stream[T] { return r.stream }

// Message returns the error message of an error reply, or nil
func (r Reply[T, V]) Message() *ErrorMessage { return r.msg }

// Position is a shorthand for r.Stream().Position()
func (r Reply[T, V]) Position() Position { return r.stream.pos }

func (r Reply[T, V]) String() string {
	switch r.status {
	case StatusSuccess:
		return fmt.Sprintf("Success(%v, %s)", r.value, r.stream.pos)
	case StatusFailure:
		return fmt.Sprintf("Failure(%s)", r.stream.pos)
	}
	return fmt.Sprintf("Error(%s, %s)", r.stream.pos, r.msg)
}

// recast changes the value type of a reply that is not a success
func recast[T, A, B any](r Reply[T, A]) Reply[T, B] {
	return Reply[T, B]{status: r.status, stream: r.stream, msg: r.msg}
}

// Run applies p to s
func Run[T, V any](p Parser[T, V], s *Stream[T]) Reply[T, V] {
	mustParser("Run", p)
	r := p(s)
	if debug.Enabled {
		debug.Printf("Run at %s -> %s", s.pos, r)
		if r.IsSuccess() {
			debug.Dump(r.value)
		}
	}
	return r
}
