package parsec

import "github.com/lestrrat/go-parsec/internal/debug"

// Return creates a parser that consumes nothing and produces v
func Return[T, V any](v V) Parser[T, V] {
	return func(s *Stream[T]) Reply[T, V] {
		return Success(v, s)
	}
}

// Map applies f to the value produced by p
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	mustParser("Map", p)
	return func(s *Stream[T]) Reply[T, B] {
		r := p(s)
		if r.status != StatusSuccess {
			return recast[T, A, B](r)
		}
		return Success(f(r.value), r.stream)
	}
}

// Bind runs p, and then the parser that f builds from p's value, starting
// where p left off. f is not called unless p succeeds.
func Bind[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	mustParser("Bind", p)
	return func(s *Stream[T]) Reply[T, B] {
		r := p(s)
		if r.status != StatusSuccess {
			return recast[T, A, B](r)
		}
		return f(r.value)(r.stream)
	}
}

// Then runs p followed by q, and keeps q's value
func Then[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	mustParser("Then", q)
	return Bind(p, func(A) Parser[T, B] { return q })
}

// KeepLeft runs p followed by q, and keeps p's value
func KeepLeft[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	mustParser("KeepLeft", q)
	return Bind(p, func(a A) Parser[T, A] {
		return Map(q, func(B) A { return a })
	})
}

// Between runs open, p and close in order, and keeps p's value
func Between[T, O, V, C any](open Parser[T, O], p Parser[T, V], close Parser[T, C]) Parser[T, V] {
	return Then(open, KeepLeft(p, close))
}

// Sequence runs parsers one after the other, and collects their values.
// The first reply that is not a success is returned as is. An empty
// Sequence succeeds without consuming anything.
func Sequence[T, V any](parsers ...Parser[T, V]) Parser[T, []V] {
	for _, p := range parsers {
		mustParser("Sequence", p)
	}
	ps := append([]Parser[T, V](nil), parsers...)
	return func(s *Stream[T]) Reply[T, []V] {
		values := make([]V, 0, len(ps))
		cur := s
		for _, p := range ps {
			r := p(cur)
			if r.status != StatusSuccess {
				return recast[T, V, []V](r)
			}
			values = append(values, r.value)
			cur = r.stream
		}
		return Success(values, cur)
	}
}

// Choice tries parsers in order, each from the same starting node, and
// returns the first success. An error stops the search: it is returned
// at once, reported at the node the Choice started from. If every
// parser fails, so does Choice.
func Choice[T, V any](parsers ...Parser[T, V]) Parser[T, V] {
	for _, p := range parsers {
		mustParser("Choice", p)
	}
	ps := append([]Parser[T, V](nil), parsers...)
	return func(s *Stream[T]) Reply[T, V] {
		for i, p := range ps {
			r := p(s)
			switch r.status {
			case StatusSuccess:
				return r
			case StatusError:
				if debug.Enabled && r.msg != nil {
					debug.Commit("Choice", s.pos, r.msg)
				}
				return Error[T, V](s, r.msg)
			}
			if debug.Enabled {
				debug.Backtrack("Choice", i, s.pos)
			}
		}
		return Failure[T, V](s)
	}
}

// Or is Choice with two alternatives
func Or[T, V any](p, q Parser[T, V]) Parser[T, V] {
	return Choice(p, q)
}

// Or2 is Or for alternatives producing different types
func Or2[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Either[A, B]] {
	return Or(
		Map(p, Left[A, B]),
		Map(q, Right[A, B]),
	)
}
