package parsec

import "strconv"

// Position is a location within the input. Line and Column are 1-based,
// Index is the 0-based count of tokens preceding the location.
// Positions are ordered by Index alone.
type Position struct {
	Line   int
	Column int
	Index  int
}

// StartPosition is the position of the first token of any input
var StartPosition = Position{Line: 1, Column: 1, Index: 0}

// Compare returns -1, 0 or 1 depending on whether p is before, at, or
// after q.
func (p Position) Compare(q Position) int {
	switch {
	case p.Index < q.Index:
		return -1
	case p.Index > q.Index:
		return 1
	}
	return 0
}

// Before returns true if p comes before q
func (p Position) Before(q Position) bool {
	return p.Index < q.Index
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Positioner computes the position of the token following cur. next is
// the token after cur, if there is one; it is needed to treat "\r\n" as a
// single line break.
type Positioner[T any] func(pos Position, cur T, next T, hasNext bool) Position

// RunePositioner advances over runes. A line ends at '\n', or at '\r'
// when it is not immediately followed by '\n'.
func RunePositioner(pos Position, cur rune, next rune, hasNext bool) Position {
	pos.Index++
	if cur == '\n' || (cur == '\r' && !(hasNext && next == '\n')) {
		pos.Line++
		pos.Column = 1
		return pos
	}
	pos.Column++
	return pos
}

// BytePositioner is RunePositioner for byte streams
func BytePositioner(pos Position, cur byte, next byte, hasNext bool) Position {
	return RunePositioner(pos, rune(cur), rune(next), hasNext)
}

func columnPositioner[T any](pos Position, _ T, _ T, _ bool) Position {
	pos.Index++
	pos.Column++
	return pos
}
