package parsec

import "fmt"

// Unit is the value of parsers that produce nothing interesting
type Unit struct{}

// Option holds either a value or nothing
type Option[V any] struct {
	value V
	ok    bool
}

// Some wraps v in an Option
func Some[V any](v V) Option[V] {
	return Option[V]{value: v, ok: true}
}

// None returns an empty Option
func None[V any]() Option[V] {
	return Option[V]{}
}

// Get returns the value, and whether there is one
func (o Option[V]) Get() (V, bool) {
	return o.value, o.ok
}

// IsSome returns true if the Option holds a value
func (o Option[V]) IsSome() bool {
	return o.ok
}

// OrElse returns the value, or def if there is none
func (o Option[V]) OrElse(def V) V {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[V]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Either holds a value of one of two types
type Either[A, B any] struct {
	left    A
	right   B
	isRight bool
}

// Left creates an Either holding a
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{left: a}
}

// Right creates an Either holding b
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{right: b, isRight: true}
}

// IsRight returns true if the right hand value is set
func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// Left returns the left hand value, if that is the one set
func (e Either[A, B]) Left() (A, bool) {
	return e.left, !e.isRight
}

// Right returns the right hand value, if that is the one set
func (e Either[A, B]) Right() (B, bool) {
	return e.right, e.isRight
}
