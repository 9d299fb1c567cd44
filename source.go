package parsec

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat/go-pdebug"
)

type stringSource struct {
	s   string
	off int
}

func (src *stringSource) Fill(dst []rune) (int, error) {
	n := 0
	for n < len(dst) && src.off < len(src.s) {
		r, w := utf8.DecodeRuneInString(src.s[src.off:])
		src.off += w
		dst[n] = r
		n++
	}
	if src.off >= len(src.s) {
		return n, io.EOF
	}
	return n, nil
}

func (src *stringSource) remaining() io.Reader {
	return strings.NewReader(src.s[src.off:])
}

type sliceSource[T any] struct {
	items []T
	off   int
}

func (src *sliceSource[T]) Fill(dst []T) (int, error) {
	n := copy(dst, src.items[src.off:])
	src.off += n
	if src.off >= len(src.items) {
		return n, io.EOF
	}
	return n, nil
}

// runeSource decodes UTF-8 from an io.Reader. Invalid byte sequences are
// delivered as utf8.RuneError, one per byte, the same way ranging over a
// string does.
type runeSource struct {
	buf    []byte // scratch buffer, read in from the io.Reader
	bufpos int    // amount consumed within the scratch buffer
	buflen int    // amount of valid data in the scratch buffer
	in     io.Reader
	err    error // sticky read error
}

func newRuneSource(in io.Reader, n int) *runeSource {
	// a rune takes at most utf8.UTFMax bytes
	if n < utf8.UTFMax {
		n = utf8.UTFMax
	}
	return &runeSource{
		buf: make([]byte, n),
		in:  in,
	}
}

func (src *runeSource) Fill(dst []rune) (int, error) {
	n := 0
	for n < len(dst) {
		pending := src.buf[src.bufpos:src.buflen]
		if len(pending) > 0 && (utf8.FullRune(pending) || src.err != nil) {
			r, w := utf8.DecodeRune(pending)
			src.bufpos += w
			dst[n] = r
			n++
			continue
		}

		if src.err != nil {
			return n, src.err
		}

		// Only whole runes are decoded above, so at most utf8.UTFMax-1
		// bytes are left over here. Rescue them, and refill the rest.
		if n > 0 {
			// we already have something to hand back. don't block on
			// the reader for more
			return n, nil
		}
		copy(src.buf, pending)
		src.buflen = len(pending)
		src.bufpos = 0

		nread, err := src.in.Read(src.buf[src.buflen:])
		if pdebug.Enabled {
			pdebug.Printf("runeSource.Fill: read %d bytes (err = %v)", nread, err)
		}
		src.buflen += nread
		if err != nil {
			src.err = err
		} else if nread == 0 {
			return n, nil
		}
	}
	return n, nil
}

func (src *runeSource) remaining() io.Reader {
	rest := append([]byte(nil), src.buf[src.bufpos:src.buflen]...)
	src.bufpos = src.buflen
	if src.err != nil {
		return bytes.NewReader(rest)
	}
	return io.MultiReader(bytes.NewReader(rest), src.in)
}

func (src *runeSource) Close() error {
	if c, ok := src.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type byteSource struct {
	in io.Reader
}

func (src *byteSource) Fill(dst []byte) (int, error) {
	n, err := src.in.Read(dst)
	if pdebug.Enabled {
		pdebug.Printf("byteSource.Fill: read %d bytes (err = %v)", n, err)
	}
	if errors.Is(err, io.EOF) {
		err = io.EOF
	}
	return n, err
}

func (src *byteSource) remaining() io.Reader {
	return src.in
}

func (src *byteSource) Close() error {
	if c, ok := src.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
