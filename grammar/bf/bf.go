// Package bf parses and runs Brainfuck programs.
package bf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lestrrat/go-parsec"
)

// Op is a Brainfuck instruction
type Op byte

const (
	OpRight Op = '>'
	OpLeft  Op = '<'
	OpInc   Op = '+'
	OpDec   Op = '-'
	OpOut   Op = '.'
	OpIn    Op = ','
	OpLoop  Op = '['
)

// Instr is a single instruction. Loops carry their body.
type Instr struct {
	Op   Op
	Body []Instr
}

// Program is a parsed Brainfuck program
type Program []Instr

// String returns the program's source, without comments
func (p Program) String() string {
	var sb strings.Builder
	writeInstrs(&sb, p)
	return sb.String()
}

func writeInstrs(sb *strings.Builder, instrs []Instr) {
	for _, in := range instrs {
		if in.Op != OpLoop {
			sb.WriteByte(byte(in.Op))
			continue
		}
		sb.WriteByte('[')
		writeInstrs(sb, in.Body)
		sb.WriteByte(']')
	}
}

const commands = "><+-.,[]"

// NewParser builds the grammar. Anything that is not a command is a
// comment.
func NewParser() parsec.Parser[rune, Program] {
	instr := parsec.NewFixedPoint[rune, Instr]()

	comments := parsec.SkipMany(parsec.NoneOf(commands))
	body := parsec.KeepLeft(parsec.Many(parsec.Then(comments, instr.Parser())), comments)

	simple := parsec.Map(parsec.OneOf("><+-.,"), func(r rune) Instr {
		return Instr{Op: Op(r)}
	})
	loop := parsec.Map(
		parsec.Between(parsec.Char('['), body, parsec.FollowedBy(parsec.Char(']'), "unterminated loop")),
		func(instrs []Instr) Instr { return Instr{Op: OpLoop, Body: instrs} },
	)
	instr.Set(parsec.Or(simple, loop))

	return parsec.Map(
		parsec.KeepLeft(body, parsec.FollowedBy(parsec.EOF[rune](), "unmatched ]")),
		func(instrs []Instr) Program { return Program(instrs) },
	)
}

// Parse parses a program from s
func Parse(s *parsec.Stream[rune]) (Program, error) {
	r := parsec.Run(NewParser(), s)
	if r.IsError() {
		return nil, r.Message()
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return r.Value(), nil
}

// ParseString parses the program in src
func ParseString(src string) (Program, error) {
	return Parse(parsec.NewStringStream(src))
}

// TapeSize is the number of cells available to a program
const TapeSize = 30000

// ErrTapeBounds is returned when a program moves off either end of the
// tape
var ErrTapeBounds = errors.New("bf: moved off the tape")

// Exec runs prog, reading input from in and writing output to out. Cells
// are bytes that wrap around. Reading past the end of in stores 0.
func Exec(prog Program, in io.Reader, out io.Writer) error {
	m := &machine{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
	if err := m.run(prog); err != nil {
		m.out.Flush()
		return err
	}
	return m.out.Flush()
}

type machine struct {
	tape [TapeSize]byte
	ptr  int
	in   *bufio.Reader
	out  *bufio.Writer
}

func (m *machine) run(instrs []Instr) error {
	for _, instr := range instrs {
		switch instr.Op {
		case OpRight:
			if m.ptr++; m.ptr >= TapeSize {
				return fmt.Errorf("%w: cell %d", ErrTapeBounds, m.ptr)
			}
		case OpLeft:
			if m.ptr--; m.ptr < 0 {
				return fmt.Errorf("%w: cell %d", ErrTapeBounds, m.ptr)
			}
		case OpInc:
			m.tape[m.ptr]++
		case OpDec:
			m.tape[m.ptr]--
		case OpOut:
			if err := m.out.WriteByte(m.tape[m.ptr]); err != nil {
				return err
			}
		case OpIn:
			b, err := m.in.ReadByte()
			if err == io.EOF {
				b = 0
			} else if err != nil {
				return err
			}
			m.tape[m.ptr] = b
		case OpLoop:
			for m.tape[m.ptr] != 0 {
				if err := m.run(instr.Body); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
