// Package parsec is a parser combinator library. Parsers are plain
// functions from a Stream to a Reply, and are composed with the
// combinators in this package into recursive descent parsers.
//
// A Stream is an immutable cursor: stepping forward yields a new node,
// and the node you stepped from stays valid, so backtracking is just a
// matter of holding on to an earlier node.
package parsec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// Stream is a node in a lazily built, doubly linked list of tokens.
// Nodes are immutable, save for the link to the next node, which is
// computed on first use and then reused.
//
// The nodes derived from one root share a buffer that is grown while
// they are traversed. Traversing one lineage from multiple goroutines
// requires external synchronization.
type Stream[T any] struct {
	buf  *buffer[T]
	off  int // offset of cur within buf
	cur  T
	ok   bool // false when at end of input
	pos  Position
	prev *Stream[T]
	next *Stream[T]
}

// NewStream creates a stream reading tokens from src. Positions advance
// one column per token, unless WithPositioner is given.
func NewStream[T any](src Source[T], options ...StreamOption) *Stream[T] {
	c := newConfig(options)
	return newRoot(newBuffer(src, c, columnPositioner[T]))
}

// NewStringStream creates a stream over the runes in s
func NewStringStream(s string, options ...StreamOption) *Stream[rune] {
	c := newConfig(options)
	return newRoot(newBuffer[rune](&stringSource{s: s}, c, RunePositioner))
}

// NewSliceStream creates a stream over arbitrary tokens
func NewSliceStream[T any](items []T, options ...StreamOption) *Stream[T] {
	c := newConfig(options)
	return newRoot(newBuffer[T](&sliceSource[T]{items: items}, c, columnPositioner[T]))
}

// NewReaderStream creates a stream over the UTF-8 encoded runes read from
// in. Only as much of in is read as the parse requires (rounded up to the
// current read size).
func NewReaderStream(in io.Reader, options ...StreamOption) *Stream[rune] {
	c := newConfig(options)
	return newRoot(newBuffer[rune](newRuneSource(in, c.bufsize*utf8.UTFMax), c, RunePositioner))
}

// NewByteStream creates a stream over the raw bytes read from in
func NewByteStream(in io.Reader, options ...StreamOption) *Stream[byte] {
	c := newConfig(options)
	return newRoot(newBuffer[byte](&byteSource{in: in}, c, BytePositioner))
}

// NewEncodedStream creates a stream over the runes of in, which is
// encoded in enc. Closing the stream closes in, if it is an io.Closer.
func NewEncodedStream(in io.Reader, enc encoding.Encoding, options ...StreamOption) *Stream[rune] {
	var rdr io.Reader = enc.NewDecoder().Reader(in)
	if c, ok := in.(io.Closer); ok {
		rdr = struct {
			io.Reader
			io.Closer
		}{rdr, c}
	}
	return NewReaderStream(rdr, options...)
}

func newRoot[T any](buf *buffer[T]) *Stream[T] {
	s := &Stream[T]{buf: buf, pos: StartPosition}
	s.cur, s.ok = buf.at(0)
	return s
}

// Current returns the token at this node. The second return value is
// false at the end of the input.
func (s *Stream[T]) Current() (T, bool) {
	return s.cur, s.ok
}

// Position returns the position of this node
func (s *Stream[T]) Position() Position {
	return s.pos
}

// Done returns true if this node is at the end of the input
func (s *Stream[T]) Done() bool {
	return !s.ok
}

// CanNext returns true if Next may be called
func (s *Stream[T]) CanNext() bool {
	return s.ok
}

// CanRewind returns true if Rewind may be called
func (s *Stream[T]) CanRewind() bool {
	return s.prev != nil
}

// Next returns the node following this one. Calling Next more than once
// returns the same node. Next panics if the node is at the end of the
// input: check CanNext first.
func (s *Stream[T]) Next() *Stream[T] {
	if s.next != nil {
		return s.next
	}
	if !s.ok {
		panic(fmt.Errorf("%w: Next called at %s", ErrEndOfStream, s.pos))
	}

	nextval, hasNext := s.buf.at(s.off + 1)
	n := &Stream[T]{
		buf:  s.buf,
		off:  s.off + 1,
		cur:  nextval,
		ok:   hasNext,
		pos:  s.buf.positioner(s.pos, s.cur, nextval, hasNext),
		prev: s,
	}
	s.next = n
	return n
}

// Rewind returns the node preceding this one. Rewind panics on the root
// node: check CanRewind first.
func (s *Stream[T]) Rewind() *Stream[T] {
	if s.prev == nil {
		panic(fmt.Errorf("%w: Rewind called at %s", ErrStartOfStream, s.pos))
	}
	return s.prev
}

// Err returns the error, other than io.EOF, that ended the input, if any.
// A stream whose source fails behaves as if the input ended there.
func (s *Stream[T]) Err() error {
	return s.buf.err
}

// Close releases the buffer shared by every node derived from the same
// root, and closes the source if it is an io.Closer. Nodes that have
// already been visited keep their tokens; nothing new is read.
func (s *Stream[T]) Close() error {
	return s.buf.close()
}

func (s *Stream[T]) String() string {
	if !s.ok {
		return fmt.Sprintf("<EOF> at %s", s.pos)
	}
	return fmt.Sprintf("%v at %s", s.cur, s.pos)
}

// Slice returns the tokens from s up to, but not including, end. end must
// be s or a node reached from s by calling Next.
func Slice[T any](s, end *Stream[T]) []T {
	if end.off <= s.off {
		return nil
	}
	out := make([]T, 0, end.off-s.off)
	for cur := s; cur != end && cur.ok; cur = cur.Next() {
		out = append(out, cur.cur)
	}
	return out
}

// Text returns the runes from s up to, but not including, end
func Text(s, end *Stream[rune]) string {
	if end.off <= s.off {
		return ""
	}
	var sb strings.Builder
	for cur := s; cur != end && cur.ok; cur = cur.Next() {
		sb.WriteRune(cur.cur)
	}
	return sb.String()
}
