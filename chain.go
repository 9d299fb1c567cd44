package parsec

// Chainl1 parses one or more terms separated by operators, and combines
// them left to right: a - b - c is (a - b) - c.
func Chainl1[T, V any](term Parser[T, V], op Parser[T, func(V, V) V]) Parser[T, V] {
	mustParser("Chainl1", term)
	mustParser("Chainl1", op)
	return func(s *Stream[T]) Reply[T, V] {
		r := term(s)
		if r.status != StatusSuccess {
			return r
		}
		acc := r.value
		cur := r.stream
		for {
			ro := op(cur)
			if ro.status == StatusError {
				return recast[T, func(V, V) V, V](ro)
			}
			if ro.status == StatusFailure {
				break
			}
			rt := term(ro.stream)
			if rt.status == StatusError {
				return rt
			}
			if rt.status == StatusFailure {
				break
			}
			acc = ro.value(acc, rt.value)
			cur = rt.stream
		}
		return Success(acc, cur)
	}
}

// Chainl is Chainl1, producing def when there is no term at all
func Chainl[T, V any](term Parser[T, V], op Parser[T, func(V, V) V], def V) Parser[T, V] {
	return Or(Chainl1(term, op), Return[T](def))
}

// Chainr1 parses one or more terms separated by operators, and combines
// them right to left: a ^ b ^ c is a ^ (b ^ c).
func Chainr1[T, V any](term Parser[T, V], op Parser[T, func(V, V) V]) Parser[T, V] {
	mustParser("Chainr1", term)
	mustParser("Chainr1", op)
	return func(s *Stream[T]) Reply[T, V] {
		r := term(s)
		if r.status != StatusSuccess {
			return r
		}
		terms := []V{r.value}
		var ops []func(V, V) V
		cur := r.stream
		for {
			ro := op(cur)
			if ro.status == StatusError {
				return recast[T, func(V, V) V, V](ro)
			}
			if ro.status == StatusFailure {
				break
			}
			rt := term(ro.stream)
			if rt.status == StatusError {
				return rt
			}
			if rt.status == StatusFailure {
				break
			}
			ops = append(ops, ro.value)
			terms = append(terms, rt.value)
			cur = rt.stream
		}

		acc := terms[len(terms)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			acc = ops[i](terms[i], acc)
		}
		return Success(acc, cur)
	}
}

// Chainr is Chainr1, producing def when there is no term at all
func Chainr[T, V any](term Parser[T, V], op Parser[T, func(V, V) V], def V) Parser[T, V] {
	return Or(Chainr1(term, op), Return[T](def))
}
