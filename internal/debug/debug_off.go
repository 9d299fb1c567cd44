//go:build !debug

package debug

import (
	"fmt"
	"io"
)

// Enabled is a global flag to fold blocks of code
const Enabled = false

// LogEnabled is always false without the "debug" tag
var LogEnabled = false

// The functions below are no-ops without the "debug" tag

func SetOutput(w io.Writer) {}
func Printf(f string, args ...interface{}) {}
func Backtrack(combinator string, n int, pos fmt.Stringer) {}
func Commit(combinator string, pos fmt.Stringer, err error) {}
func Dump(v ...interface{}) {}
