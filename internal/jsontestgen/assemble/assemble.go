// Package assemble builds the two code fragments of a JSON test from the same
// sample values: the object under test and the ordered tree it must encode to.
package assemble

import (
	"strconv"
	"strings"

	"github.com/sublee/jsontestgen/internal/jsontestgen/sample"
)

// Arg is an argument of a step.
type Arg struct {
	Text   string
	Quoted bool
}

// Key is an argument holding a JSON object key.
func Key(name string) Arg { return Arg{Text: name, Quoted: true} }

// Sample is an argument holding a sample value.
func Sample(v sample.Value) Arg {
	return Arg{Text: v.Literal, Quoted: v.Kind == sample.StringLiteral}
}

// Render returns the Go source of the argument.
func (a Arg) Render() string {
	if a.Quoted {
		return strconv.Quote(a.Text)
	}
	return a.Text
}

// Step is a single field assignment in a fragment.
type Step struct {
	Name string
	Args []Arg
}

// Form decides how the steps of a fragment are laid out.
type Form int

const (
	// Statements calls each step on the variable in its own statement.
	//
	//	expected := linkedhashmap.New()
	//	expected.Put("x", 1)
	Statements Form = iota

	// Chain calls each step on the result of the previous one.
	//
	//	value := NewPointBuilder().
	//		X(1).
	//		Build()
	Chain

	// Literal lists each step as a keyed element of a composite literal.
	//
	//	value := Point{
	//		X: 1,
	//	}
	Literal
)

// Fragment is a variable declaration built by a sequence of steps.
type Fragment struct {
	Var  string
	Form Form

	// Head is the initial expression. For Literal, it is the type name.
	Head string

	Steps []Step

	// Finish is the method called last in a Chain.
	Finish string
}

// Render returns the Go source of the fragment. The source is not formatted.
func (f Fragment) Render() string {
	var b strings.Builder

	switch f.Form {
	case Statements:
		b.WriteString(f.Var + " := " + f.Head + "\n")
		for _, s := range f.Steps {
			b.WriteString(f.Var + "." + s.Name + "(" + renderArgs(s.Args) + ")\n")
		}

	case Chain:
		b.WriteString(f.Var + " := " + f.Head + ".\n")
		for _, s := range f.Steps {
			b.WriteString("\t" + s.Name + "(" + renderArgs(s.Args) + ").\n")
		}
		b.WriteString("\t" + f.Finish + "()\n")

	case Literal:
		b.WriteString(f.Var + " := " + f.Head + "{\n")
		for _, s := range f.Steps {
			b.WriteString("\t" + s.Name + ": " + renderArgs(s.Args) + ",\n")
		}
		b.WriteString("}\n")
	}

	return b.String()
}

func renderArgs(args []Arg) string {
	texts := make([]string, len(args))
	for i, a := range args {
		texts[i] = a.Render()
	}
	return strings.Join(texts, ", ")
}

// Target is the type the object fragment instantiates.
type Target struct {
	// TypeName refers the type from the generated file.
	TypeName string

	// Builder is the name of a function returning a builder. If it is empty,
	// the object is a composite literal.
	Builder string

	// BuildPointer indicates that the builder builds a pointer.
	BuildPointer bool
}

// Object assembles the fragment which instantiates the target with the
// sample values, in field order.
func Object(v string, target Target, fields []sample.Field) Fragment {
	steps := make([]Step, len(fields))
	for i, f := range fields {
		steps[i] = Step{Name: f.MemberName, Args: []Arg{Sample(f.Value)}}
	}

	if target.Builder != "" {
		return Fragment{
			Var:    v,
			Form:   Chain,
			Head:   target.Builder + "()",
			Steps:  steps,
			Finish: "Build",
		}
	}
	return Fragment{Var: v, Form: Literal, Head: target.TypeName, Steps: steps}
}

// Tree assembles the fragment which fills an ordered map with the sample
// values keyed by the JSON names, in field order. container is the expression
// creating an empty map.
func Tree(v, container string, fields []sample.Field) Fragment {
	steps := make([]Step, len(fields))
	for i, f := range fields {
		steps[i] = Step{Name: "Put", Args: []Arg{Key(f.ExternalName), Sample(f.Value)}}
	}
	return Fragment{Var: v, Form: Statements, Head: container, Steps: steps}
}
