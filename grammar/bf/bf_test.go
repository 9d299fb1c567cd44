package bf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lestrrat/go-parsec"
	"github.com/stretchr/testify/assert"
)

const hello = `
A classic: prints "Hello World!"
++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
`

func TestParse(t *testing.T) {
	prog, err := ParseString("+[->+<] comment .")
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Equal(t, "+[->+<].", prog.String(), "comments are dropped") {
		return
	}
	if !assert.Len(t, prog, 3) || !assert.Equal(t, OpLoop, prog[1].Op) || !assert.Len(t, prog[1].Body, 4) {
		return
	}

	nested, err := ParseString("[[[]]]")
	if !assert.NoError(t, err) || !assert.Equal(t, "[[[]]]", nested.String()) {
		return
	}

	empty, err := ParseString("just words")
	if !assert.NoError(t, err) || !assert.Empty(t, empty) {
		return
	}
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("+[[-]")
	var m *parsec.ErrorMessage
	if !assert.True(t, errors.As(err, &m), "unterminated loop is an error") {
		return
	}
	if !assert.Equal(t, "unterminated loop", m.Text) || !assert.Equal(t, 5, m.Begin.Index) {
		return
	}

	_, err = ParseString("+]")
	if !assert.True(t, errors.As(err, &m), "stray ] is an error") {
		return
	}
	if !assert.Equal(t, "unmatched ]", m.Text) || !assert.Equal(t, 1, m.Begin.Index) {
		return
	}
}

func TestExec(t *testing.T) {
	prog, err := ParseString(hello)
	if !assert.NoError(t, err) {
		return
	}
	var out bytes.Buffer
	if !assert.NoError(t, Exec(prog, strings.NewReader(""), &out)) {
		return
	}
	if !assert.Equal(t, "Hello World!\n", out.String()) {
		return
	}
}

func TestExecInput(t *testing.T) {
	// cat until end of input
	prog, err := ParseString(",[.,]")
	if !assert.NoError(t, err) {
		return
	}
	var out bytes.Buffer
	if !assert.NoError(t, Exec(prog, strings.NewReader("echo"), &out)) || !assert.Equal(t, "echo", out.String()) {
		return
	}
}

func TestExecTapeBounds(t *testing.T) {
	prog, err := ParseString("<")
	if !assert.NoError(t, err) {
		return
	}
	err = Exec(prog, strings.NewReader(""), &bytes.Buffer{})
	if !assert.True(t, errors.Is(err, ErrTapeBounds)) {
		return
	}
}
