package parsec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// panicsWith calls fn, and checks that it panics with an error that
// wraps target
func panicsWith(t *testing.T, target error, fn func(), msgAndArgs ...interface{}) bool {
	t.Helper()

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if !assert.NotNil(t, recovered, msgAndArgs...) {
		return false
	}
	err, ok := recovered.(error)
	if !assert.True(t, ok, fmt.Sprintf("panic value should be an error, got %T", recovered)) {
		return false
	}
	return assert.True(t, errors.Is(err, target), fmt.Sprintf("expected %v, got %v", target, err))
}

// countingSource counts how many times Fill is called
type countingSource[T any] struct {
	Source[T]
	fills int
}

func (c *countingSource[T]) Fill(dst []T) (int, error) {
	c.fills++
	return c.Source.Fill(dst)
}
