package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparatorFamily(t *testing.T) {
	item := Letter()
	comma := Char(',')

	testcases := []struct {
		name   string
		parser Parser[rune, []rune]
		input  string
		status Status
		value  string
		index  int
	}{
		{"SepBy0", SepBy0(item, comma), "a,b,c", StatusSuccess, "abc", 5},
		{"SepBy0 trailing", SepBy0(item, comma), "a,b,c,", StatusSuccess, "abc", 5},
		{"SepBy0 empty", SepBy0(item, comma), "", StatusSuccess, "", 0},
		{"SepBy0 no match", SepBy0(item, comma), "1", StatusSuccess, "", 0},
		{"SepBy1", SepBy1(item, comma), "a,b", StatusSuccess, "ab", 3},
		{"SepBy1 empty", SepBy1(item, comma), "", StatusFailure, "", 0},
		{"EndBy0 trailing", EndBy0(item, comma), "a,b,c,", StatusSuccess, "abc", 6},
		{"EndBy0 unterminated", EndBy0(item, comma), "a,b,c", StatusSuccess, "ab", 4},
		{"EndBy0 empty", EndBy0(item, comma), "", StatusSuccess, "", 0},
		{"EndBy1", EndBy1(item, comma), "a,", StatusSuccess, "a", 2},
		{"EndBy1 unterminated", EndBy1(item, comma), "a", StatusFailure, "", 0},
		{"SepEndBy0 trailing", SepEndBy0(item, comma), "a,b,c,", StatusSuccess, "abc", 6},
		{"SepEndBy0", SepEndBy0(item, comma), "a,b,c", StatusSuccess, "abc", 5},
		{"SepEndBy0 empty", SepEndBy0(item, comma), "", StatusSuccess, "", 0},
		{"SepEndBy1 separator only", SepEndBy1(item, comma), ",", StatusFailure, "", 0},
		{"SepEndBy1", SepEndBy1(item, comma), "a,b,1", StatusSuccess, "ab", 4},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			r := Run(tc.parser, NewStringStream(tc.input))
			if !assert.Equal(t, tc.status, r.Status(), "status") {
				return
			}
			if !assert.Equal(t, tc.index, r.Position().Index, "position") {
				return
			}
			if tc.status == StatusSuccess {
				if !assert.Equal(t, tc.value, string(r.Value()), "value") {
					return
				}
			}
		})
	}
}

func TestSeparatorError(t *testing.T) {
	sep := Or(Char(','), Then(Char(';'), Fail[rune, rune]("use a comma")))
	for name, p := range map[string]Parser[rune, []rune]{
		"SepBy0":    SepBy0(Letter(), sep),
		"EndBy0":    EndBy0(Letter(), sep),
		"SepEndBy0": SepEndBy0(Letter(), sep),
	} {
		r := Run(p, NewStringStream("a,b;c"))
		if !assert.True(t, r.IsError(), "%s propagates errors", name) {
			return
		}
		if !assert.Equal(t, "use a comma", r.Message().Text, name) {
			return
		}
	}
}
