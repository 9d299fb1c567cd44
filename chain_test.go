package parsec

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func number() Parser[rune, int] {
	return Map(Runes(Many1(Digit())), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
}

func operator(c rune, fn func(int, int) int) Parser[rune, func(int, int) int] {
	return Map(Char(c), func(rune) func(int, int) int { return fn })
}

func TestChainl(t *testing.T) {
	minus := operator('-', func(a, b int) int { return a - b })
	p := Chainl1(number(), minus)

	r := Run(p, NewStringStream("10-3-2"))
	if !assert.True(t, r.IsSuccess()) || !assert.Equal(t, 5, r.Value(), "(10-3)-2") {
		return
	}

	r = Run(p, NewStringStream("10-"))
	if !assert.True(t, r.IsSuccess()) || !assert.Equal(t, 10, r.Value()) {
		return
	}
	if !assert.Equal(t, 2, r.Position().Index, "dangling operator is not consumed") {
		return
	}

	r = Run(Chainl(number(), minus, -1), NewStringStream("x"))
	if !assert.True(t, r.IsSuccess()) || !assert.Equal(t, -1, r.Value(), "default value") {
		return
	}
	if !assert.True(t, Run(p, NewStringStream("x")).IsFailure(), "Chainl1 needs a term") {
		return
	}
}

func TestChainr(t *testing.T) {
	minus := operator('-', func(a, b int) int { return a - b })
	p := Chainr1(number(), minus)

	r := Run(p, NewStringStream("10-3-2"))
	if !assert.True(t, r.IsSuccess()) || !assert.Equal(t, 9, r.Value(), "10-(3-2)") {
		return
	}

	pow := operator('^', func(a, b int) int {
		n := 1
		for i := 0; i < b; i++ {
			n *= a
		}
		return n
	})
	r = Run(Chainr1(number(), pow), NewStringStream("2^3^2"))
	if !assert.True(t, r.IsSuccess()) || !assert.Equal(t, 512, r.Value(), "2^(3^2)") {
		return
	}

	r = Run(Chainr(number(), minus, 7), NewStringStream(""))
	if !assert.True(t, r.IsSuccess()) || !assert.Equal(t, 7, r.Value(), "default value") {
		return
	}
}

func TestChainExpression(t *testing.T) {
	plus := operator('+', func(a, b int) int { return a + b })
	times := operator('*', func(a, b int) int { return a * b })

	expr := NewFixedPoint[rune, int]()
	factor := Or(number(), Between(Char('('), expr.Parser(), Char(')')))
	term := Chainl1(factor, times)
	expr.Set(Chainl1(term, plus))

	for input, expected := range map[string]int{
		"1+2*3":     7,
		"(1+2)*3":   9,
		"2*(3+4)*5": 70,
		"((7))":     7,
	} {
		r := Run(KeepLeft(expr.Parser(), EOF[rune]()), NewStringStream(input))
		if !assert.True(t, r.IsSuccess(), "%q parses", input) || !assert.Equal(t, expected, r.Value(), input) {
			return
		}
	}
}
