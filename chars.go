package parsec

import (
	"strings"
	"unicode"
)

// Satisfy consumes one token for which pred returns true
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(s *Stream[T]) Reply[T, T] {
		v, ok := s.Current()
		if !ok || !pred(v) {
			return Failure[T, T](s)
		}
		return Success(v, s.Next())
	}
}

// Any consumes any one token
func Any[T any]() Parser[T, T] {
	return Satisfy(func(T) bool { return true })
}

// Token consumes one token equal to t
func Token[T comparable](t T) Parser[T, T] {
	return Satisfy(func(v T) bool { return v == t })
}

// EOF matches the end of the input
func EOF[T any]() Parser[T, Unit] {
	return func(s *Stream[T]) Reply[T, Unit] {
		if s.CanNext() {
			return Failure[T, Unit](s)
		}
		return Success(Unit{}, s)
	}
}

// Char consumes the rune r
func Char(r rune) Parser[rune, rune] {
	return Token(r)
}

// OneOf consumes a rune that appears in chars
func OneOf(chars string) Parser[rune, rune] {
	return Satisfy(func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// NoneOf consumes a rune that does not appear in chars
func NoneOf(chars string) Parser[rune, rune] {
	return Satisfy(func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// Range consumes a rune between lo and hi, inclusive
func Range(lo, hi rune) Parser[rune, rune] {
	return Satisfy(func(r rune) bool { return lo <= r && r <= hi })
}

// Class consumes a rune in the unicode range table tab
func Class(tab *unicode.RangeTable) Parser[rune, rune] {
	return Satisfy(func(r rune) bool { return unicode.Is(tab, r) })
}

// Letter consumes a unicode letter
func Letter() Parser[rune, rune] {
	return Satisfy(unicode.IsLetter)
}

// Digit consumes a decimal digit, 0 to 9
func Digit() Parser[rune, rune] {
	return Range('0', '9')
}

// HexDigit consumes a hexadecimal digit
func HexDigit() Parser[rune, rune] {
	return OneOf("0123456789abcdefABCDEF")
}

// Space consumes a unicode white space character
func Space() Parser[rune, rune] {
	return Satisfy(unicode.IsSpace)
}

// Spaces skips any amount of white space, including none
func Spaces() Parser[rune, Unit] {
	return SkipMany(Space())
}

// Newline consumes "\n", "\r\n" or a lone "\r", and produces "\n"
func Newline() Parser[rune, rune] {
	return func(s *Stream[rune]) Reply[rune, rune] {
		r, ok := s.Current()
		if !ok {
			return Failure[rune, rune](s)
		}
		switch r {
		case '\n':
			return Success('\n', s.Next())
		case '\r':
			n := s.Next()
			if r, ok := n.Current(); ok && r == '\n' {
				n = n.Next()
			}
			return Success('\n', n)
		}
		return Failure[rune, rune](s)
	}
}

// String consumes the runes of str
func String(str string) Parser[rune, string] {
	return func(s *Stream[rune]) Reply[rune, string] {
		cur := s
		for _, want := range str {
			got, ok := cur.Current()
			if !ok || got != want {
				return Failure[rune, string](s)
			}
			cur = cur.Next()
		}
		return Success(str, cur)
	}
}

// Lexeme runs p and skips the white space that follows it
func Lexeme[V any](p Parser[rune, V]) Parser[rune, V] {
	return KeepLeft(p, Spaces())
}

// Runes turns a parser of rune slices into a parser of strings
func Runes(p Parser[rune, []rune]) Parser[rune, string] {
	return Map(p, func(rs []rune) string { return string(rs) })
}

// Matched runs p and produces the text it consumed
func Matched[V any](p Parser[rune, V]) Parser[rune, string] {
	mustParser("Matched", p)
	return func(s *Stream[rune]) Reply[rune, string] {
		r := p(s)
		if r.status != StatusSuccess {
			return recast[rune, V, string](r)
		}
		return Success(Text(s, r.stream), r.stream)
	}
}
