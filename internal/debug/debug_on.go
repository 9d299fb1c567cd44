//go:build debug

package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Enabled is a global flag to fold blocks of code
const Enabled = true

// LogEnabled is read from PARSEC_DEBUG_LOG. Without it nothing is
// traced, even when built with `-tags debug`.
var LogEnabled = false

var logger *log.Logger

// values are dumped without pointer addresses so traces can be diffed
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                4,
}

func init() {
	LogEnabled, _ = strconv.ParseBool(os.Getenv("PARSEC_DEBUG_LOG"))
	logger = log.New(os.Stderr, "|PARSEC| ", 0)
}

// SetOutput redirects the trace
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Printf prints debug messages. Only available if compiled with "debug" tag
func Printf(f string, args ...interface{}) {
	if !LogEnabled {
		return
	}
	logger.Printf(f, args...)
}

// Backtrack records that alternative n of a combinator failed at pos,
// and that the input is rewound to it
func Backtrack(combinator string, n int, pos fmt.Stringer) {
	if !LogEnabled {
		return
	}
	logger.Printf("%s: alternative %d failed at %s, backtracking", combinator, n, pos)
}

// Commit records that an error raised at pos ends the search for
// alternatives
func Commit(combinator string, pos fmt.Stringer, err error) {
	if !LogEnabled {
		return
	}
	logger.Printf("%s: committed at %s: %v", combinator, pos, err)
}

// Dump logs a parse result
func Dump(v ...interface{}) {
	if !LogEnabled {
		return
	}
	logger.Print(dumper.Sdump(v...))
}
