package parsec

import "fmt"

// Many applies p as many times as it matches, and collects the values.
// The failure that ends the repetition is not reported; an error is.
// Many panics when p succeeds without consuming input.
func Many[T, V any](p Parser[T, V]) Parser[T, []V] {
	return repeat(p, 0, -1)
}

// Many1 is like Many, but requires at least one match
func Many1[T, V any](p Parser[T, V]) Parser[T, []V] {
	return repeat(p, 1, -1)
}

// ManyMin is like Many, but requires at least min matches
func ManyMin[T, V any](p Parser[T, V], min int) Parser[T, []V] {
	if min < 0 {
		panic(fmt.Errorf("%w: ManyMin(%d)", ErrInvalidBounds, min))
	}
	return repeat(p, min, -1)
}

// ManyRange requires at least min matches of p, and then takes up to
// max-min more if they are there
func ManyRange[T, V any](p Parser[T, V], min, max int) Parser[T, []V] {
	if min < 0 || max < min {
		panic(fmt.Errorf("%w: ManyRange(%d, %d)", ErrInvalidBounds, min, max))
	}
	return repeat(p, min, max)
}

// Repeat requires exactly n matches of p
func Repeat[T, V any](p Parser[T, V], n int) Parser[T, []V] {
	if n < 0 {
		panic(fmt.Errorf("%w: Repeat(%d)", ErrInvalidBounds, n))
	}
	return repeat(p, n, n)
}

// Skip runs p and drops its value
func Skip[T, V any](p Parser[T, V]) Parser[T, Unit] {
	return Map(p, func(V) Unit { return Unit{} })
}

// SkipMany is Many, dropping the values
func SkipMany[T, V any](p Parser[T, V]) Parser[T, Unit] {
	mustParser("SkipMany", p)
	return func(s *Stream[T]) Reply[T, Unit] {
		cur := s
		for {
			r := p(cur)
			switch r.status {
			case StatusError:
				return recast[T, V, Unit](r)
			case StatusFailure:
				return Success(Unit{}, cur)
			}
			if r.stream.off == cur.off {
				panic(fmt.Errorf("%w: SkipMany at %s", ErrEmptyLoop, cur.pos))
			}
			cur = r.stream
		}
	}
}

// repeat collects between min and max matches of p. max < 0 means there
// is no upper limit. Falling short of min fails at s.
func repeat[T, V any](p Parser[T, V], min, max int) Parser[T, []V] {
	mustParser("Many", p)
	return func(s *Stream[T]) Reply[T, []V] {
		values := []V{}
		cur := s
		for max < 0 || len(values) < max {
			r := p(cur)
			if r.status == StatusError {
				return recast[T, V, []V](r)
			}
			if r.status == StatusFailure {
				if len(values) < min {
					return Failure[T, []V](s)
				}
				break
			}

			if max < 0 && r.stream.off == cur.off {
				panic(fmt.Errorf("%w: Many at %s", ErrEmptyLoop, cur.pos))
			}
			values = append(values, r.value)
			cur = r.stream
		}
		return Success(values, cur)
	}
}
