package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecursiveMatchesIterative(t *testing.T) {
	a, b, c := Char('a'), Char('b'), Char('c')

	inputs := []string{"abc", "abx", "x", "", "aaab", "cba"}
	for _, input := range inputs {
		iter := Run(Sequence(a, b, c), NewStringStream(input))
		rec := Run(ToSlice(SequenceR(a, b, c)), NewStringStream(input))
		if !assert.Equal(t, iter.Status(), rec.Status(), "Sequence status on %q", input) {
			return
		}
		if !assert.Equal(t, iter.Position(), rec.Position(), "Sequence position on %q", input) {
			return
		}
		if iter.IsSuccess() && !assert.Equal(t, iter.Value(), rec.Value(), "Sequence value on %q", input) {
			return
		}

		ci := Run(Choice(c, b, a), NewStringStream(input))
		cr := Run(ChoiceR(c, b, a), NewStringStream(input))
		if !assert.Equal(t, ci.Status(), cr.Status(), "Choice status on %q", input) {
			return
		}
		if !assert.Equal(t, ci.Position(), cr.Position(), "Choice position on %q", input) {
			return
		}

		mi := Run(Many(a), NewStringStream(input))
		mr := Run(ToSlice(ManyR(a)), NewStringStream(input))
		if !assert.Equal(t, mi.Status(), mr.Status(), "Many status on %q", input) {
			return
		}
		if !assert.Equal(t, mi.Position(), mr.Position(), "Many position on %q", input) {
			return
		}
		if !assert.Equal(t, mi.Value(), mr.Value(), "Many value on %q", input) {
			return
		}
	}
}

func TestRecursiveErrors(t *testing.T) {
	boom := Then(Char('b'), Fail[rune, rune]("boom"))

	r := Run(ChoiceR(boom, Char('b')), NewStringStream("b"))
	if !assert.True(t, r.IsError(), "ChoiceR stops at an error") || !assert.Equal(t, 0, r.Position().Index) {
		return
	}

	r2 := Run(ManyR(Or(Char('a'), boom)), NewStringStream("aab"))
	if !assert.True(t, r2.IsError(), "ManyR propagates errors") {
		return
	}

	r3 := Run(SequenceR(Char('a'), boom), NewStringStream("ab"))
	if !assert.True(t, r3.IsError(), "SequenceR propagates errors") {
		return
	}

	panicsWith(t, ErrEmptyLoop, func() {
		Run(ManyR(Return[rune](1)), NewStringStream("a"))
	})
}

func TestManyRLazyValue(t *testing.T) {
	r := Run(ManyR(Digit()), NewStringStream("123x"))
	if !assert.True(t, r.IsSuccess()) {
		return
	}
	v := r.Value()
	head, ok := v.Head()
	if !assert.True(t, ok) || !assert.Equal(t, '1', head) {
		return
	}
	if !assert.Equal(t, 3, v.Len()) {
		return
	}
}
