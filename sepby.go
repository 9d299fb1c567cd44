package parsec

import "fmt"

// SepBy0 parses zero or more occurrences of p separated by sep. A
// trailing separator is not consumed.
func SepBy0[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return sepBy(p, sep, 0, false)
}

// SepBy1 parses one or more occurrences of p separated by sep. A
// trailing separator is not consumed.
func SepBy1[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return sepBy(p, sep, 1, false)
}

// SepEndBy0 parses zero or more occurrences of p separated by sep, and
// consumes a trailing separator if there is one
func SepEndBy0[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return sepBy(p, sep, 0, true)
}

// SepEndBy1 parses one or more occurrences of p separated by sep, and
// consumes a trailing separator if there is one
func SepEndBy1[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return sepBy(p, sep, 1, true)
}

// EndBy0 parses zero or more occurrences of p, each followed by sep
func EndBy0[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return endBy(p, sep, 0)
}

// EndBy1 parses one or more occurrences of p, each followed by sep
func EndBy1[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return endBy(p, sep, 1)
}

func sepBy[T, V, S any](p Parser[T, V], sep Parser[T, S], min int, trailing bool) Parser[T, []V] {
	mustParser("SepBy", p)
	mustParser("SepBy", sep)
	return func(s *Stream[T]) Reply[T, []V] {
		values := []V{}
		r := p(s)
		switch r.status {
		case StatusError:
			return recast[T, V, []V](r)
		case StatusFailure:
			if min > 0 {
				return Failure[T, []V](s)
			}
			return Success(values, s)
		}
		values = append(values, r.value)
		cur := r.stream

		for {
			rs := sep(cur)
			if rs.status == StatusError {
				return recast[T, S, []V](rs)
			}
			if rs.status == StatusFailure {
				break
			}

			ri := p(rs.stream)
			if ri.status == StatusError {
				return recast[T, V, []V](ri)
			}
			if ri.status == StatusFailure {
				if trailing {
					cur = rs.stream
				}
				break
			}

			if ri.stream.off == cur.off {
				panic(fmt.Errorf("%w: SepBy at %s", ErrEmptyLoop, cur.pos))
			}
			values = append(values, ri.value)
			cur = ri.stream
		}
		return Success(values, cur)
	}
}

func endBy[T, V, S any](p Parser[T, V], sep Parser[T, S], min int) Parser[T, []V] {
	mustParser("EndBy", p)
	mustParser("EndBy", sep)
	return func(s *Stream[T]) Reply[T, []V] {
		values := []V{}
		cur := s
		for {
			ri := p(cur)
			if ri.status == StatusError {
				return recast[T, V, []V](ri)
			}
			if ri.status == StatusFailure {
				break
			}

			rs := sep(ri.stream)
			if rs.status == StatusError {
				return recast[T, S, []V](rs)
			}
			if rs.status == StatusFailure {
				break
			}

			if rs.stream.off == cur.off {
				panic(fmt.Errorf("%w: EndBy at %s", ErrEmptyLoop, cur.pos))
			}
			values = append(values, ri.value)
			cur = rs.stream
		}

		if len(values) < min {
			return Failure[T, []V](s)
		}
		return Success(values, cur)
	}
}
