// Package json parses JSON text into Value trees, using the combinators
// of package parsec.
package json

import (
	"strconv"
	"unicode/utf16"

	"github.com/lestrrat/go-parsec"
)

// Parser holds a JSON grammar. Build one with NewParser and reuse it;
// it is safe to use from multiple goroutines on different streams.
type Parser struct {
	document parsec.Parser[rune, Value]
}

// NewParser builds the grammar
func NewParser() *Parser {
	value := parsec.NewFixedPoint[rune, Value]()

	ws := parsec.Spaces()
	sym := func(c rune) parsec.Parser[rune, rune] {
		return parsec.Lexeme(parsec.Char(c))
	}
	keyword := func(word string, v Value) parsec.Parser[rune, Value] {
		return parsec.Map(parsec.Lexeme(parsec.String(word)), func(string) Value { return v })
	}

	str := parsec.Lexeme(stringLiteral())
	array := parsec.Map(
		parsec.Between(sym('['), list(value.Parser(), sym(',')), parsec.FollowedBy(sym(']'), "expected ',' or ']'")),
		func(items []Value) Value { return ArrayValue(items...) },
	)
	member := parsec.Bind(str, func(key string) parsec.Parser[rune, Member] {
		return parsec.Then(
			parsec.FollowedBy(sym(':'), "expected ':'"),
			parsec.Map(parsec.FollowedBy(value.Parser(), "expected value"), func(v Value) Member {
				return Member{Key: key, Value: v}
			}),
		)
	})
	object := parsec.Map(
		parsec.Between(sym('{'), list(member, sym(',')), parsec.FollowedBy(sym('}'), "expected ',' or '}'")),
		func(members []Member) Value { return ObjectValue(members...) },
	)

	value.Set(parsec.Choice(
		object,
		array,
		parsec.Map(str, StringValue),
		parsec.Lexeme(numberLiteral()),
		keyword("true", BoolValue(true)),
		keyword("false", BoolValue(false)),
		keyword("null", NullValue()),
	))

	return &Parser{
		document: parsec.Then(ws, parsec.KeepLeft(
			parsec.FollowedBy(value.Parser(), "expected value"),
			parsec.FollowedBy(parsec.EOF[rune](), "unexpected trailing input"),
		)),
	}
}

// Grammar returns the parser for a complete JSON document, surrounding
// white space included
func (p *Parser) Grammar() parsec.Parser[rune, Value] {
	return p.document
}

// Parse parses a complete JSON document from s. Errors are returned as
// *parsec.ErrorMessage.
func (p *Parser) Parse(s *parsec.Stream[rune]) (Value, error) {
	r := parsec.Run(p.document, s)
	if r.IsError() {
		return Value{}, r.Message()
	}
	if err := s.Err(); err != nil {
		return Value{}, err
	}
	return r.Value(), nil
}

// Parse parses text as a JSON document
func Parse(text string) (Value, error) {
	return NewParser().Parse(parsec.NewStringStream(text))
}

// list parses zero or more items separated by sep. Once a separator has
// been seen, an item must follow.
func list[V, S any](item parsec.Parser[rune, V], sep parsec.Parser[rune, S]) parsec.Parser[rune, []V] {
	more := parsec.Many(parsec.Then(sep, parsec.FollowedBy(item, "expected value")))
	return parsec.Optional(
		parsec.Bind(item, func(first V) parsec.Parser[rune, []V] {
			return parsec.Map(more, func(rest []V) []V {
				return append([]V{first}, rest...)
			})
		}),
		nil,
	)
}

func numberLiteral() parsec.Parser[rune, Value] {
	digits := parsec.Skip(parsec.Many1(parsec.Digit()))
	minus := parsec.Skip(parsec.Maybe(parsec.Char('-')))
	integer := parsec.Or(
		parsec.Skip(parsec.Char('0')),
		parsec.Then(parsec.Range('1', '9'), parsec.Skip(parsec.Many(parsec.Digit()))),
	)
	fraction := parsec.Skip(parsec.Maybe(parsec.Then(
		parsec.Char('.'),
		parsec.FollowedBy(digits, "expected digits after '.'"),
	)))
	exponent := parsec.Skip(parsec.Maybe(parsec.Sequence(
		parsec.Skip(parsec.OneOf("eE")),
		parsec.Skip(parsec.Maybe(parsec.OneOf("+-"))),
		parsec.FollowedBy(digits, "expected exponent digits"),
	)))

	return parsec.Map(
		parsec.Matched(parsec.Sequence(minus, integer, fraction, exponent)),
		NumberValue,
	)
}

var escapes = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

func stringLiteral() parsec.Parser[rune, string] {
	plain := parsec.Satisfy(func(r rune) bool {
		return r != '"' && r != '\\' && r >= 0x20
	})
	simple := parsec.Map(parsec.OneOf(`"\/bfnrt`), func(r rune) rune { return escapes[r] })
	hex := parsec.Map(parsec.Runes(parsec.Repeat(parsec.HexDigit(), 4)), func(s string) rune {
		n, _ := strconv.ParseUint(s, 16, 32)
		return rune(n)
	})
	unicode := parsec.Then(parsec.Char('u'), parsec.FollowedBy(hex, "expected 4 hex digits"))
	escape := parsec.Then(parsec.Char('\\'), parsec.FollowedBy(parsec.Or(simple, unicode), "invalid escape"))

	return parsec.Map(
		parsec.Between(
			parsec.Char('"'),
			parsec.Many(parsec.Or(plain, escape)),
			parsec.FollowedBy(parsec.Char('"'), "unterminated string"),
		),
		decodeSurrogates,
	)
}

// decodeSurrogates combines \uXXXX escapes that form UTF-16 surrogate
// pairs
func decodeSurrogates(rs []rune) string {
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		if utf16.IsSurrogate(rs[i]) && i+1 < len(rs) {
			if r := utf16.DecodeRune(rs[i], rs[i+1]); r != 0xFFFD {
				out = append(out, r)
				i++
				continue
			}
		}
		out = append(out, rs[i])
	}
	return string(out)
}
