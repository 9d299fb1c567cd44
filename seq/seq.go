package seq

import "iter"

type cell[T any] struct {
	head T
	tail Seq[T]
}

// Seq is a lazy list. The zero value is the empty list.
type Seq[T any] struct {
	d   *Delayed[*cell[T]]
	cat *catNode[T] // set on lists built by Concat
}

type catNode[T any] struct {
	left, right Seq[T]
}

// pending is a stack of lists still to be appended
type pending[T any] struct {
	s    Seq[T]
	next *pending[T]
}

func (s Seq[T]) force() *cell[T] {
	if s.d == nil {
		return nil
	}
	return s.d.Force()
}

// Empty returns the empty list
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Cons prepends head to tail
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return Seq[T]{d: Now(&cell[T]{head: head, tail: tail})}
}

// ConsDelayed prepends head to the list that tail will produce. tail is
// not called until the rest of the list is needed.
func ConsDelayed[T any](head T, tail func() Seq[T]) Seq[T] {
	return Seq[T]{d: Now(&cell[T]{head: head, tail: Lazy(tail)})}
}

// Lazy creates a list whose contents are produced by fn on first use
func Lazy[T any](fn func() Seq[T]) Seq[T] {
	return Seq[T]{d: Delay(func() *cell[T] { return fn().force() })}
}

// FromSlice creates a list over the elements of xs. The slice is not
// copied, and should not be modified while the list is in use.
func FromSlice[T any](xs []T) Seq[T] {
	return fromSlice(xs, 0)
}

func fromSlice[T any](xs []T, i int) Seq[T] {
	if i >= len(xs) {
		return Seq[T]{}
	}
	return ConsDelayed(xs[i], func() Seq[T] { return fromSlice(xs, i+1) })
}

// Of creates a list of its arguments
func Of[T any](xs ...T) Seq[T] {
	return FromSlice(xs)
}

// IsEmpty returns true if the list has no elements
func (s Seq[T]) IsEmpty() bool {
	return s.force() == nil
}

// Head returns the first element. The second return value is false if
// the list is empty.
func (s Seq[T]) Head() (T, bool) {
	c := s.force()
	if c == nil {
		var zero T
		return zero, false
	}
	return c.head, true
}

// Tail returns the list without its first element. The tail of the empty
// list is the empty list.
func (s Seq[T]) Tail() Seq[T] {
	c := s.force()
	if c == nil {
		return s
	}
	return c.tail
}

// Concat returns a followed by b. Neither list is looked at until the
// result is. Chains of Concat, nested either way, are walked in a loop.
func Concat[T any](a, b Seq[T]) Seq[T] {
	return Seq[T]{
		d:   Delay(func() *cell[T] { return forceConcat(a, &pending[T]{s: b}) }),
		cat: &catNode[T]{left: a, right: b},
	}
}

func forceConcat[T any](s Seq[T], rest *pending[T]) *cell[T] {
	for {
		// unforced concatenations are flattened onto rest
		if s.cat != nil && !s.d.Forced() {
			rest = &pending[T]{s: s.cat.right, next: rest}
			s = s.cat.left
			continue
		}
		c := s.force()
		if c != nil {
			if rest == nil {
				return c
			}
			tail, more := c.tail, rest
			return &cell[T]{head: c.head, tail: Seq[T]{d: Delay(func() *cell[T] { return forceConcat(tail, more) })}}
		}
		if rest == nil {
			return nil
		}
		s, rest = rest.s, rest.next
	}
}

// Map applies f to each element, as the elements are needed
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return Seq[U]{d: Delay(func() *cell[U] {
		c := s.force()
		if c == nil {
			return nil
		}
		return &cell[U]{head: f(c.head), tail: Map(c.tail, f)}
	})}
}

// Filter keeps the elements for which pred returns true
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return Seq[T]{d: Delay(func() *cell[T] {
		for c := s.force(); c != nil; c = c.tail.force() {
			if pred(c.head) {
				return &cell[T]{head: c.head, tail: Filter(c.tail, pred)}
			}
		}
		return nil
	})}
}

// Fold combines the elements from left to right, starting with init
func Fold[T, A any](s Seq[T], init A, f func(A, T) A) A {
	acc := init
	for c := s.force(); c != nil; c = c.tail.force() {
		acc = f(acc, c.head)
	}
	return acc
}

// All returns an iterator over the elements
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s.force(); c != nil; c = c.tail.force() {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Len forces the whole list and returns its length
func (s Seq[T]) Len() int {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// Slice forces the whole list and returns its elements
func (s Seq[T]) Slice() []T {
	return Fold(s, []T{}, func(xs []T, x T) []T { return append(xs, x) })
}
