package parsec

import (
	"fmt"
	"io"

	"github.com/lestrrat/go-pdebug"
)

// maxChunk caps the size of a single read from the source
const maxChunk = 64 * 1024

// buffer is the read-ahead window shared by every Stream derived from
// the same root. Tokens are never discarded once read: a Stream may be
// rewound to any earlier node, and that node must still see its token.
type buffer[T any] struct {
	src        Source[T]
	items      []T
	chunk      int  // size of the next read from src
	eof        bool // src is exhausted (or broken)
	err        error
	fills      int // number of reads issued against src
	positioner Positioner[T]
	closed     bool
}

func newBuffer[T any](src Source[T], c config, positioner Positioner[T]) *buffer[T] {
	if c.positioner != nil {
		fn, ok := c.positioner.(Positioner[T])
		if !ok {
			panic(fmt.Errorf("%w: positioner of type %T", ErrInvalidOption, c.positioner))
		}
		positioner = fn
	}
	return &buffer[T]{
		src:        src,
		items:      make([]T, 0, c.bufsize),
		chunk:      c.bufsize,
		positioner: positioner,
	}
}

// ensure makes sure that at least n tokens are buffered. It returns false
// if the source ran out before that.
func (b *buffer[T]) ensure(n int) bool {
	if len(b.items) >= n {
		return true
	}
	if b.eof {
		return false
	}

	if pdebug.Enabled {
		g := pdebug.IPrintf("START buffer.ensure %d (have %d)", n, len(b.items))
		defer func() {
			g.IRelease("END buffer.ensure %d (have %d, eof = %t)", n, len(b.items), b.eof)
		}()
	}

	empty := 0
	for len(b.items) < n {
		// grow geometrically, and read as much as fits in one go, so that
		// we do not go back to the source one token at a time
		if cap(b.items)-len(b.items) < b.chunk {
			newcap := 2 * cap(b.items)
			if want := len(b.items) + b.chunk; newcap < want {
				newcap = want
			}
			if newcap < n {
				newcap = n
			}
			grown := make([]T, len(b.items), newcap)
			copy(grown, b.items)
			b.items = grown
		}

		l := len(b.items)
		b.fills++
		nread, err := b.src.Fill(b.items[l:cap(b.items)])
		if nread > 0 {
			b.items = b.items[:l+nread]
			if b.chunk < maxChunk {
				b.chunk *= 2
			}
			empty = 0
		}

		if err != nil {
			b.eof = true
			if err != io.EOF {
				b.err = err
			}
			break
		}

		if nread == 0 {
			empty++
			if empty >= maxEmptyFills {
				b.eof = true
				b.err = io.ErrNoProgress
				break
			}
		}
	}
	return len(b.items) >= n
}

func (b *buffer[T]) at(i int) (T, bool) {
	if !b.ensure(i + 1) {
		var zero T
		return zero, false
	}
	return b.items[i], true
}

func (b *buffer[T]) close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.eof = true
	b.items = nil
	if c, ok := b.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
