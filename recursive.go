package parsec

import (
	"fmt"

	"github.com/lestrrat/go-parsec/seq"
)

// The combinators in this file are the textbook definitions of Sequence,
// Choice and Many in terms of Bind and Or, producing lazy lists. Their
// stack usage grows with the number of parsers (SequenceR, ChoiceR) or
// matches (ManyR), so use the iterative versions on unbounded input.

// SequenceR is Sequence, defined recursively
func SequenceR[T, V any](parsers ...Parser[T, V]) Parser[T, seq.Seq[V]] {
	if len(parsers) == 0 {
		return Return[T](seq.Empty[V]())
	}
	head := parsers[0]
	mustParser("SequenceR", head)
	rest := SequenceR(parsers[1:]...)
	return Bind(head, func(v V) Parser[T, seq.Seq[V]] {
		return Map(rest, func(tail seq.Seq[V]) seq.Seq[V] {
			return seq.Cons(v, tail)
		})
	})
}

// ChoiceR is Choice, defined recursively
func ChoiceR[T, V any](parsers ...Parser[T, V]) Parser[T, V] {
	if len(parsers) == 0 {
		return func(s *Stream[T]) Reply[T, V] {
			return Failure[T, V](s)
		}
	}
	head := parsers[0]
	mustParser("ChoiceR", head)
	rest := ChoiceR(parsers[1:]...)
	return func(s *Stream[T]) Reply[T, V] {
		r := head(s)
		switch r.status {
		case StatusSuccess:
			return r
		case StatusError:
			return Error[T, V](s, r.msg)
		}
		return rest(s)
	}
}

// ManyR is Many, defined recursively
func ManyR[T, V any](p Parser[T, V]) Parser[T, seq.Seq[V]] {
	mustParser("ManyR", p)
	var many Parser[T, seq.Seq[V]]
	many = func(s *Stream[T]) Reply[T, seq.Seq[V]] {
		r := p(s)
		switch r.status {
		case StatusFailure:
			return Success(seq.Empty[V](), s)
		case StatusError:
			return recast[T, V, seq.Seq[V]](r)
		}
		if r.stream.off == s.off {
			panic(fmt.Errorf("%w: ManyR at %s", ErrEmptyLoop, s.pos))
		}
		rest := many(r.stream)
		if rest.status != StatusSuccess {
			return rest
		}
		return Success(seq.Cons(r.value, rest.value), rest.stream)
	}
	return many
}

// ToSlice turns a parser of lazy lists into a parser of slices
func ToSlice[T, V any](p Parser[T, seq.Seq[V]]) Parser[T, []V] {
	return Map(p, seq.Seq[V].Slice)
}
