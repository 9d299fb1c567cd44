package parsec

// And succeeds, consuming nothing, if p matches at the current node
func And[T, V any](p Parser[T, V]) Parser[T, Unit] {
	mustParser("And", p)
	return func(s *Stream[T]) Reply[T, Unit] {
		r := p(s)
		switch r.status {
		case StatusSuccess:
			return Success(Unit{}, s)
		case StatusFailure:
			return Failure[T, Unit](s)
		}
		return recast[T, V, Unit](r)
	}
}

// Not succeeds, consuming nothing, if p does not match at the current
// node, and fails if it does
func Not[T, V any](p Parser[T, V]) Parser[T, Unit] {
	mustParser("Not", p)
	return func(s *Stream[T]) Reply[T, Unit] {
		r := p(s)
		switch r.status {
		case StatusSuccess:
			return Failure[T, Unit](s)
		case StatusFailure:
			return Success(Unit{}, s)
		}
		return recast[T, V, Unit](r)
	}
}

// Maybe turns a failure of p into None, consuming nothing
func Maybe[T, V any](p Parser[T, V]) Parser[T, Option[V]] {
	mustParser("Maybe", p)
	return func(s *Stream[T]) Reply[T, Option[V]] {
		r := p(s)
		switch r.status {
		case StatusSuccess:
			return Success(Some(r.value), r.stream)
		case StatusFailure:
			return Success(None[V](), s)
		}
		return recast[T, V, Option[V]](r)
	}
}

// Optional is Maybe with a default value instead of an Option
func Optional[T, V any](p Parser[T, V], def V) Parser[T, V] {
	return Map(Maybe(p), func(o Option[V]) V { return o.OrElse(def) })
}
