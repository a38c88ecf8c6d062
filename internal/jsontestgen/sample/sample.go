// Package sample synthesizes the sample value of a JSON field.
//
// The mapping from a field type to its sample is closed and deterministic:
//
//	boolean    true
//	integral   1
//	character  'a'
//	floating   1.1
//	string     the field's own Go name, e.g. "Label"
//
// Any other type fails with [parse.ErrUnsupportedFieldType]. A string field
// is sampled with its own name so that a field wired to the wrong JSON name
// shows up as a visibly wrong value.
package sample

import (
	"strconv"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/jsontestgen/parse"
	"github.com/sublee/jsontestgen/internal/typeinfo"
)

// Kind tells how a sample value is written in Go source.
type Kind int

const (
	// NumericLiteral values are written bare: true, 1, 'a', 1.1.
	NumericLiteral Kind = iota

	// StringLiteral values are written quoted.
	StringLiteral
)

func (k Kind) String() string {
	if k == StringLiteral {
		return "string-literal"
	}
	return "numeric-literal"
}

// Value is the sample value of a field.
type Value struct {
	// Literal is the Go source of the value. For StringLiteral values, it is
	// the unquoted string.
	Literal string

	// Kind is decided by the field's type category only.
	Kind Kind
}

// Source returns the Go source of the value, quoted if necessary.
func (v Value) Source() string {
	if v.Kind == StringLiteral {
		return strconv.Quote(v.Literal)
	}
	return v.Literal
}

// Synthesize returns the sample value of the field.
func Synthesize(field parse.FieldDescriptor, f codefmt.Formatter) (Value, error) {
	if field.HasTagOption("string") {
		return Value{}, f.Wrapf(codefmt.Pos(field.Pos), parse.ErrUnsupportedFieldType, "field %s is encoded as a JSON string by the \",string\" tag option", field.MemberName)
	}

	cat, reason := field.Type.CategoryReason()
	switch cat {
	case typeinfo.Boolean:
		return Value{Literal: "true", Kind: NumericLiteral}, nil
	case typeinfo.Integral:
		return Value{Literal: "1", Kind: NumericLiteral}, nil
	case typeinfo.Character:
		return Value{Literal: "'a'", Kind: NumericLiteral}, nil
	case typeinfo.Floating:
		return Value{Literal: "1.1", Kind: NumericLiteral}, nil
	case typeinfo.String:
		return Value{Literal: field.MemberName, Kind: StringLiteral}, nil
	}

	return Value{}, f.Wrapf(codefmt.Pos(field.Pos), parse.ErrUnsupportedFieldType, "field %s has type %t: %s", field.MemberName, field.Type, reason)
}

// Field is a field paired with its sample value.
type Field struct {
	parse.FieldDescriptor
	Value Value
}

// SynthesizeAll synthesizes the sample value of each field once, in order. It
// stops at the first unsupported field.
func SynthesizeAll(fields []parse.FieldDescriptor, f codefmt.Formatter) ([]Field, error) {
	out := make([]Field, 0, len(fields))
	for _, field := range fields {
		v, err := Synthesize(field, f)
		if err != nil {
			return nil, err
		}
		out = append(out, Field{FieldDescriptor: field, Value: v})
	}
	return out, nil
}
