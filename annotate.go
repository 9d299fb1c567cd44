package parsec

import "github.com/lestrrat/go-parsec/internal/debug"

// Fail produces an error with SeverityError at the current node
func Fail[T, V any](text string) Parser[T, V] {
	return raise[T, V](SeverityError, text)
}

// Warn produces an error with SeverityWarn at the current node
func Warn[T, V any](text string) Parser[T, V] {
	return raise[T, V](SeverityWarn, text)
}

// Message produces an error with SeverityMessage at the current node
func Message[T, V any](text string) Parser[T, V] {
	return raise[T, V](SeverityMessage, text)
}

func raise[T, V any](severity Severity, text string) Parser[T, V] {
	return func(s *Stream[T]) Reply[T, V] {
		return Error[T, V](s, NewErrorMessage(severity, text, s.pos, s.pos))
	}
}

// FollowedBy behaves like p, except that a failure of p becomes an error
// with the given text. Use it after the point in a rule where the input
// can no longer be anything else, so that a mismatch is reported where it
// happened instead of sending the parse off to try other alternatives.
//
// Unlike Parsec's lookahead of the same name, FollowedBy is not a
// predicate: on success it consumes what p consumed and returns p's
// value. NotFollowedBy is the one that never consumes.
func FollowedBy[T, V any](p Parser[T, V], text string) Parser[T, V] {
	mustParser("FollowedBy", p)
	return func(s *Stream[T]) Reply[T, V] {
		r := p(s)
		if r.status != StatusFailure {
			return r
		}
		end := s.pos
		if r.stream != nil && end.Before(r.stream.pos) {
			end = r.stream.pos
		}
		m := NewErrorMessage(SeverityError, text, s.pos, end)
		if debug.Enabled {
			debug.Commit("FollowedBy", s.pos, m)
		}
		return Error[T, V](s, m)
	}
}

// NotFollowedBy succeeds, consuming nothing, if p does not match. If p
// matches, it produces an error with the given text, positioned at the
// start of the match. It is a lookahead, not the dual of FollowedBy; use
// Not or And to test for p without committing.
func NotFollowedBy[T, V any](p Parser[T, V], text string) Parser[T, Unit] {
	mustParser("NotFollowedBy", p)
	return func(s *Stream[T]) Reply[T, Unit] {
		r := p(s)
		switch r.status {
		case StatusFailure:
			return Success(Unit{}, s)
		case StatusSuccess:
			if debug.Enabled {
				debug.Printf("NotFollowedBy: %q at %s", text, s.pos)
			}
			return Error[T, Unit](s, NewErrorMessage(SeverityError, text, s.pos, r.stream.pos))
		}
		return recast[T, V, Unit](r)
	}
}

// Label replaces the text of errors produced by p. Severity and
// positions are kept.
func Label[T, V any](p Parser[T, V], text string) Parser[T, V] {
	mustParser("Label", p)
	return func(s *Stream[T]) Reply[T, V] {
		r := p(s)
		if r.status != StatusError {
			return r
		}
		if r.msg == nil {
			return Error[T, V](r.stream, NewErrorMessage(SeverityError, text, r.stream.pos, r.stream.pos))
		}
		m := *r.msg
		m.Text = text
		return Error[T, V](r.stream, &m)
	}
}
