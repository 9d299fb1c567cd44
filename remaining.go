package parsec

import (
	"bytes"
	"io"
)

// Remaining returns an io.Reader over everything from s onwards that the
// parse has not looked at yet: the runes already buffered at or after s,
// followed by whatever the source still holds. Reading from it drains
// the source, so the stream lineage must not be traversed past the
// buffered region afterwards.
func Remaining(s *Stream[rune]) io.Reader {
	var buf bytes.Buffer
	if s.ok && !s.buf.closed {
		for _, r := range s.buf.items[s.off:] {
			buf.WriteRune(r)
		}
	}
	u := &unused{unused: buf.Bytes()}
	if rs, ok := s.buf.src.(remainder); ok && !s.buf.closed {
		u.rdr = rs.remaining()
	}
	return u
}

type unused struct {
	unused []byte
	rdr    io.Reader
}

func (u *unused) Read(b []byte) (int, error) {
	if len(u.unused) > 0 {
		n := copy(b, u.unused)
		u.unused = u.unused[n:]
		return n, nil
	}

	if u.rdr == nil {
		return 0, io.EOF
	}
	return u.rdr.Read(b)
}
