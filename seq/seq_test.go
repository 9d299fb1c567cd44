package seq_test

import (
	"testing"

	"github.com/lestrrat/go-parsec/seq"
	"github.com/stretchr/testify/assert"
)

func TestDelayed(t *testing.T) {
	calls := 0
	d := seq.Delay(func() int {
		calls++
		return 42
	})
	if !assert.False(t, d.Forced(), "not forced on creation") || !assert.Equal(t, 0, calls) {
		return
	}
	if !assert.Equal(t, 42, d.Force()) || !assert.Equal(t, 42, d.Force()) {
		return
	}
	if !assert.Equal(t, 1, calls, "computed once") || !assert.True(t, d.Forced()) {
		return
	}
	if !assert.Equal(t, "x", seq.Now("x").Force()) {
		return
	}
}

func TestConsDoesNotForceTail(t *testing.T) {
	forced := false
	s := seq.ConsDelayed(1, func() seq.Seq[int] {
		forced = true
		return seq.Of(2, 3)
	})

	head, ok := s.Head()
	if !assert.True(t, ok) || !assert.Equal(t, 1, head) {
		return
	}
	if !assert.False(t, forced, "looking at the head leaves the tail alone") {
		return
	}
	if !assert.Equal(t, []int{1, 2, 3}, s.Slice()) || !assert.True(t, forced) {
		return
	}
}

func TestEmpty(t *testing.T) {
	var zero seq.Seq[int]
	for _, s := range []seq.Seq[int]{zero, seq.Empty[int](), seq.Of[int]()} {
		if !assert.True(t, s.IsEmpty()) || !assert.Equal(t, 0, s.Len()) {
			return
		}
		_, ok := s.Head()
		if !assert.False(t, ok) || !assert.True(t, s.Tail().IsEmpty()) {
			return
		}
	}
}

func TestConcatIsLazy(t *testing.T) {
	forced := false
	second := seq.Lazy(func() seq.Seq[int] {
		forced = true
		return seq.Of(3, 4)
	})
	s := seq.Concat(seq.Of(1, 2), second)

	if !assert.Equal(t, 1, take(s, 1)[0]) || !assert.Equal(t, []int{1, 2}, take(s, 2)) {
		return
	}
	if !assert.False(t, forced, "second list untouched until reached") {
		return
	}
	if !assert.Equal(t, []int{1, 2, 3, 4}, s.Slice()) || !assert.True(t, forced) {
		return
	}
	if !assert.Equal(t, []int{5}, seq.Concat(seq.Empty[int](), seq.Of(5)).Slice()) {
		return
	}
}

func TestMapFilterFold(t *testing.T) {
	s := seq.Of(1, 2, 3, 4, 5, 6)

	calls := 0
	doubled := seq.Map(s, func(n int) int {
		calls++
		return n * 2
	})
	if !assert.Equal(t, 0, calls, "Map is lazy") {
		return
	}
	if !assert.Equal(t, []int{2, 4, 6, 8, 10, 12}, doubled.Slice()) {
		return
	}

	even := seq.Filter(s, func(n int) bool { return n%2 == 0 })
	if !assert.Equal(t, []int{2, 4, 6}, even.Slice()) {
		return
	}

	sum := seq.Fold(s, 0, func(acc, n int) int { return acc + n })
	if !assert.Equal(t, 21, sum) {
		return
	}
}

func TestLongSequence(t *testing.T) {
	const n = 100000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}

	s := seq.Filter(seq.Map(seq.FromSlice(xs), func(x int) int { return x + 1 }), func(x int) bool { return x > n-3 })
	if !assert.Equal(t, []int{n - 2, n - 1, n}, s.Slice(), "filter skips most elements without recursion") {
		return
	}

	if !assert.Equal(t, n, seq.FromSlice(xs).Len()) {
		return
	}
}

func TestConcatAccumulation(t *testing.T) {
	const n = 100000
	s := seq.Empty[int]()
	for i := 0; i < n; i++ {
		s = seq.Concat(s, seq.Of(i))
	}
	if !assert.Equal(t, n, s.Len(), "left nested Concat keeps every element") {
		return
	}
	if !assert.Equal(t, []int{0, 1, 2}, take(s, 3), "elements come out in order") {
		return
	}

	r := seq.Empty[int]()
	for i := n - 1; i >= 0; i-- {
		r = seq.Concat(seq.Of(i), r)
	}
	if !assert.Equal(t, n, r.Len(), "right nested Concat keeps every element") {
		return
	}

	mixed := seq.Concat(seq.Concat(seq.Of(1), seq.Empty[int]()), seq.Concat(seq.Empty[int](), seq.Of(2, 3)))
	if !assert.Equal(t, []int{1, 2, 3}, mixed.Slice()) {
		return
	}
}

func take(s seq.Seq[int], n int) []int {
	var out []int
	for v := range s.All() {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
