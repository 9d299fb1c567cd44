package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	a := Position{Line: 1, Column: 5, Index: 4}
	b := Position{Line: 2, Column: 1, Index: 6}

	if !assert.Equal(t, -1, a.Compare(b)) || !assert.Equal(t, 1, b.Compare(a)) || !assert.Equal(t, 0, a.Compare(a)) {
		return
	}
	if !assert.True(t, a.Before(b)) || !assert.False(t, b.Before(a)) {
		return
	}
	if !assert.Equal(t, "2:1", b.String()) {
		return
	}
	if !assert.Equal(t, StartPosition, NewStringStream("x").Position()) {
		return
	}
}
