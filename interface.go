package parsec

import (
	"errors"
	"io"
)

// Source produces the tokens that a Stream walks over.
type Source[T any] interface {
	// Fill reads up to len(dst) tokens into dst, and returns the number
	// of tokens read. It returns io.EOF once the input is exhausted.
	// Returning a count > 0 along with io.EOF is allowed.
	Fill(dst []T) (int, error)
}

// remainder is implemented by sources that can hand back whatever they
// have not yet delivered, as raw text.
type remainder interface {
	remaining() io.Reader
}

// DefaultBufferSize is the number of tokens a stream asks its source for
// on its first read. Subsequent reads grow geometrically.
var DefaultBufferSize = 256

// maxEmptyFills is how many times in a row a source may return nothing
// (and no error) before we consider it broken
const maxEmptyFills = 100

// StreamOption configures streams created by the New*Stream functions
type StreamOption interface {
	apply(*config)
}

type config struct {
	bufsize    int
	positioner interface{}
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithBufferSize sets the size of the first batch read from the source.
// Values <= 0 select DefaultBufferSize.
func WithBufferSize(n int) StreamOption {
	return optionFunc(func(c *config) {
		c.bufsize = n
	})
}

// WithPositioner replaces the function used to compute token positions.
// The positioner's token type must match the stream's token type.
func WithPositioner[T any](fn Positioner[T]) StreamOption {
	return optionFunc(func(c *config) {
		c.positioner = fn
	})
}

// ErrInvalidOption is raised (via panic) when a StreamOption does not apply
// to the stream being constructed
var ErrInvalidOption = errors.New("parsec: invalid stream option")

func newConfig(options []StreamOption) config {
	c := config{bufsize: DefaultBufferSize}
	for _, o := range options {
		o.apply(&c)
	}
	if c.bufsize <= 0 {
		c.bufsize = DefaultBufferSize
	}
	if c.bufsize <= 0 {
		c.bufsize = 1
	}
	return c
}
