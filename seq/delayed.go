// Package seq implements lazily evaluated cons lists.
//
// A Seq is a chain of cells whose tails are computed only when something
// looks at them, and then remembered. Traversal functions in this package
// walk the chain with a loop, so arbitrarily long lists can be folded
// without growing the call stack.
package seq

// Delayed is a value that is computed on first use. Subsequent uses see
// the same value.
type Delayed[T any] struct {
	fn    func() T
	value T
	done  bool
}

// Delay creates a Delayed that runs fn when forced
func Delay[T any](fn func() T) *Delayed[T] {
	return &Delayed[T]{fn: fn}
}

// Now creates a Delayed that is already computed
func Now[T any](v T) *Delayed[T] {
	return &Delayed[T]{value: v, done: true}
}

// Force computes the value if necessary, and returns it
func (d *Delayed[T]) Force() T {
	if !d.done {
		fn := d.fn
		d.fn = nil
		d.value = fn()
		d.done = true
	}
	return d.value
}

// Forced returns true if the value has been computed
func (d *Delayed[T]) Forced() bool {
	return d.done
}
