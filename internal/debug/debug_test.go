//go:build debug

package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type at string

func (a at) String() string { return string(a) }

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	old := LogEnabled
	LogEnabled = true
	defer func() {
		LogEnabled = old
		SetOutput(os.Stderr)
	}()

	Backtrack("Choice", 1, at("1:3"))
	if !assert.Contains(t, buf.String(), "|PARSEC| Choice: alternative 1 failed at 1:3, backtracking") {
		return
	}

	buf.Reset()
	Dump(42)
	if !assert.Contains(t, buf.String(), "(int) 42") {
		return
	}

	buf.Reset()
	LogEnabled = false
	Backtrack("Choice", 2, at("1:4"))
	if !assert.Empty(t, buf.String(), "nothing is traced unless enabled") {
		return
	}
}
