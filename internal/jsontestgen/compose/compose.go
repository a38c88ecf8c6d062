// Package compose writes the test file of a type.
package compose

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/jsontestgen/assemble"
	"github.com/sublee/jsontestgen/internal/jsontestgen/parse"
	"github.com/sublee/jsontestgen/internal/jsontestgen/sample"
	"github.com/sublee/jsontestgen/internal/words"
)

// BuildTag excludes generated files while jsontestgen loads packages. Stale
// files never fail the load that would regenerate them.
const BuildTag = "jsontestgen"

// DefaultSuffix is appended to a type name to name its test unit.
const DefaultSuffix = "JSON"

const (
	treePath    = "github.com/emirpasic/gods/maps/linkedhashmap"
	assertPath  = "github.com/stretchr/testify/assert"
	requirePath = "github.com/stretchr/testify/require"
)

// Options are the options of [Compose].
type Options struct {
	// Codec is the name of the JSON codec. See [LookupCodec].
	Codec string

	// Suffix is appended to the type name to name the unit. If it is empty,
	// [DefaultSuffix] is used.
	Suffix string

	// Version is written in the header if it is not empty.
	Version string
}

// Unit is a generated test file.
type Unit struct {
	// Name is the type name with the suffix, e.g., "PointJSON".
	Name string

	TypeName string
	PkgName  string
	PkgPath  string

	// FileName is the suggested base name of the file, e.g.,
	// "point_json_test.go".
	FileName string

	Source []byte
}

// UnitName returns the name of the test unit of the type.
func UnitName(typeName, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return typeName + suffix
}

// FileName returns the suggested file name of the unit.
func FileName(unit string) string {
	return words.SnakeCase(unit) + "_test.go"
}

// TestPrefix returns the prefix of the test function names of the unit. A
// function named "Test" followed by a lower-case letter is not a test.
func TestPrefix(unit string) string {
	if words.IsLower(unit) {
		return "Test_"
	}
	return "Test"
}

// Compose writes the serialization and deserialization tests of the type.
// Compose depends only on its arguments: the same arguments always compose the
// same source.
func Compose(meta parse.TypeMeta, fields []sample.Field, opts Options) (*Unit, error) {
	codec, err := LookupCodec(opts.Codec)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no JSON fields in %s", meta.Name)
	}

	unit := UnitName(meta.Name, opts.Suffix)

	var body bytes.Buffer
	w := codefmt.NewWriter(&body, meta.Fmt, codefmt.NewNS(meta.Reserved...))

	// Imports first: their names must win over the generated names.
	c := composer{
		w:        w,
		meta:     meta,
		fields:   fields,
		testing:  w.Import("testing", "testing"),
		codecPkg: w.Import(codec.Path, codec.PkgName),
		treePkg:  w.Import(treePath, "linkedhashmap"),
		assert:   w.Import(assertPath, "assert"),
		require:  w.Import(requirePath, "require"),
	}
	c.codecVar = w.NS().Name("codec" + unit)
	prefix := TestPrefix(unit)
	serName := w.NS().Name(prefix + unit + "Serialization")
	deserName := w.NS().Name(prefix + unit + "Deserialization")

	c.writeCodec(codec)
	c.writeSerialization(serName)
	c.writeDeserialization(deserName)

	var buf bytes.Buffer
	versionSuffix := ""
	if opts.Version != "" {
		versionSuffix = "@" + opts.Version
	}
	fmt.Fprintf(&buf, "%s%s. DO NOT EDIT.\n\n", parse.GeneratedHeader, versionSuffix)
	fmt.Fprintf(&buf, "//go:build !%s\n\n", BuildTag)
	fmt.Fprintf(&buf, "package %s\n\n", meta.PkgName)
	w.WithBuf(&buf).WriteImports()
	buf.WriteString("\n")
	buf.Write(body.Bytes())

	code := buf.Bytes()
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}

	return &Unit{
		Name:     unit,
		TypeName: meta.Name,
		PkgName:  meta.PkgName,
		PkgPath:  meta.PkgPath,
		FileName: FileName(unit),
		Source:   code,
	}, nil
}

type composer struct {
	w      *codefmt.Writer
	meta   parse.TypeMeta
	fields []sample.Field

	testing, codecPkg, treePkg, assert, require string

	codecVar string
}

func (c *composer) writeCodec(codec Codec) {
	c.w.Printf("var %s = struct {\n", c.codecVar)
	c.w.Printf("\tMarshal func(any) ([]byte, error)\n")
	c.w.Printf("\tUnmarshal func([]byte, any) error\n")
	c.w.Printf("}{%s.%s, %s.%s}\n\n", c.codecPkg, codec.Marshal, c.codecPkg, codec.Unmarshal)
}

// locals returns unique names for the local variables of a test function.
func (c *composer) locals(names ...string) []string {
	ns := c.w.NS().Clone()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = ns.Name(name)
	}
	return out
}

func (c *composer) object(v string) assemble.Fragment {
	return assemble.Object(v, assemble.Target{
		TypeName:     c.meta.Name,
		Builder:      c.meta.Options.Builder,
		BuildPointer: c.meta.Options.BuildPointer,
	}, c.fields)
}

func (c *composer) tree(v string) assemble.Fragment {
	return assemble.Tree(v, c.treePkg+".New()", c.fields)
}

// writeSerialization writes a test which encodes the object and compares it
// with the encoded tree.
func (c *composer) writeSerialization(name string) {
	l := c.locals("t", "expected", "value", "want", "have", "err")
	t, expected, value, want, have, err := l[0], l[1], l[2], l[3], l[4], l[5]

	c.w.Printf("func %s(%s *%s.T) {\n", name, t, c.testing)
	c.w.Printf("%s", c.tree(expected).Render())
	c.w.Printf("%s\n", c.object(value).Render())
	c.w.Printf("%s, %s := %s.ToJSON()\n", want, err, expected)
	c.w.Printf("%s.NoError(%s, %s)\n", c.require, t, err)
	c.w.Printf("%s, %s := %s.Marshal(%s)\n", have, err, c.codecVar, value)
	c.w.Printf("%s.NoError(%s, %s)\n", c.require, t, err)
	c.w.Printf("%s.Equal(%s, string(%s), string(%s))\n", c.assert, t, want, have)
	c.w.Printf("}\n\n")
}

// writeDeserialization writes a test which decodes the encoded tree and
// compares it with the object.
func (c *composer) writeDeserialization(name string) {
	l := c.locals("t", "expected", "value", "data", "have", "err")
	t, expected, value, data, have, err := l[0], l[1], l[2], l[3], l[4], l[5]

	ref := have
	if c.meta.Options.Builder != "" && c.meta.Options.BuildPointer {
		ref = "&" + have
	}

	c.w.Printf("func %s(%s *%s.T) {\n", name, t, c.testing)
	c.w.Printf("%s", c.object(expected).Render())
	c.w.Printf("%s\n", c.tree(value).Render())
	c.w.Printf("%s, %s := %s.ToJSON()\n", data, err, value)
	c.w.Printf("%s.NoError(%s, %s)\n", c.require, t, err)
	c.w.Printf("var %s %s\n", have, c.meta.Name)
	c.w.Printf("%s.NoError(%s, %s.Unmarshal(%s, &%s))\n", c.require, t, c.codecVar, data, have)
	c.w.Printf("%s.Equal(%s, %s, %s)\n", c.assert, t, expected, ref)
	c.w.Printf("}\n")
}
