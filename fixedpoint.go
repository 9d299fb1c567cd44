package parsec

import "fmt"

// FixedPoint is a parser that is defined after it is used. Create one,
// use its Parser in the rules that refer to it, and then Set it to the
// rule it stands for:
//
//	expr := parsec.NewFixedPoint[rune, int]()
//	paren := parsec.Between(parsec.Char('('), expr.Parser(), parsec.Char(')'))
//	expr.Set(parsec.Or(number, paren))
type FixedPoint[T, V any] struct {
	p Parser[T, V]
}

// NewFixedPoint creates an unset FixedPoint
func NewFixedPoint[T, V any]() *FixedPoint[T, V] {
	return &FixedPoint[T, V]{}
}

// Set defines the parser. It panics if p is nil, or if the FixedPoint
// has already been set.
func (f *FixedPoint[T, V]) Set(p Parser[T, V]) {
	mustParser("FixedPoint.Set", p)
	if f.p != nil {
		panic(fmt.Errorf("%w: Set called twice", ErrFixedPointSet))
	}
	f.p = p
}

// IsSet returns true once Set has been called
func (f *FixedPoint[T, V]) IsSet() bool {
	return f.p != nil
}

// Parse applies the parser given to Set. It panics if Set has not been
// called yet.
func (f *FixedPoint[T, V]) Parse(s *Stream[T]) Reply[T, V] {
	if f.p == nil {
		panic(fmt.Errorf("%w: at %s", ErrFixedPointUnset, s.pos))
	}
	return f.p(s)
}

// Parser returns a Parser that calls Parse
func (f *FixedPoint[T, V]) Parser() Parser[T, V] {
	return f.Parse
}
