package json

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member is a key/value pair of an object
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value. Numbers keep the literal text they were parsed
// from, so no precision is lost; objects keep their members in input
// order, duplicates included.
type Value struct {
	kind    Kind
	b       bool
	text    string // number literal, or string contents
	items   []Value
	members []Member
}

func NullValue() Value { return Value{kind: Null} }
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }
func NumberValue(lit string) Value { return Value{kind: Number, text: lit} }
func StringValue(s string) Value { return Value{kind: String, text: s} }
func ArrayValue(items ...Value) Value { return Value{kind: Array, items: items} }
func ObjectValue(members ...Member) Value { return Value{kind: Object, members: members} }

func (v Value) Kind() Kind { return v.kind }

// Bool returns the value of a boolean
func (v Value) Bool() bool { return v.b }

// Str returns the contents of a string
func (v Value) Str() string { return v.text }

// Number returns the literal text of a number
func (v Value) Number() string { return v.text }

// Int64 interprets a number as an integer
func (v Value) Int64() (int64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("json: %s is not a number", v.kind)
	}
	return strconv.ParseInt(v.text, 10, 64)
}

// Float64 interprets a number as a float
func (v Value) Float64() (float64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("json: %s is not a number", v.kind)
	}
	return strconv.ParseFloat(v.text, 64)
}

// Items returns the elements of an array
func (v Value) Items() []Value { return v.items }

// Members returns the members of an object
func (v Value) Members() []Member { return v.members }

// Get returns the value of the last member named key
func (v Value) Get(key string) (Value, bool) {
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// String encodes v as compact JSON text
func (v Value) String() string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

func (v Value) encode(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	case Number:
		sb.WriteString(v.text)
	case String:
		quote(sb, v.text)
	case Array:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.encode(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			quote(sb, m.Key)
			sb.WriteByte(':')
			m.Value.encode(sb)
		}
		sb.WriteByte('}')
	}
}

func quote(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
