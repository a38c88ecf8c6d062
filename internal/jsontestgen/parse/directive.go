package parse

import (
	"go/ast"
	"go/token"
	"strings"
)

// Directive is the comment which opts a struct type in to test generation.
const Directive = "//jsontestgen:generate"

// Options are the directive options of a type.
type Options struct {
	// Builder is the name of a function returning a builder of the type. If it
	// is empty, the type is instantiated by a composite literal.
	Builder string

	// BuildPointer indicates that the builder's Build method returns a
	// pointer to the type.
	BuildPointer bool
}

// findDirective returns the directive comment in the comment group.
func findDirective(doc *ast.CommentGroup) (*ast.Comment, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		if c.Text == Directive || strings.HasPrefix(c.Text, Directive+" ") || strings.HasPrefix(c.Text, Directive+"\t") {
			return c, true
		}
	}
	return nil, false
}

// parseDirective parses the options following the directive.
//
//	//jsontestgen:generate
//	//jsontestgen:generate builder
//	//jsontestgen:generate builder=NewPointBuilder
func (p *Parser) parseDirective(c *ast.Comment, typeName string) (Options, error) {
	var opts Options
	seen := make(map[string]bool)

	for _, arg := range strings.Fields(strings.TrimPrefix(c.Text, Directive)) {
		key, value, hasValue := strings.Cut(arg, "=")
		if seen[key] {
			return Options{}, p.wrapf(c, ErrInvalidDirective, "option %q is given twice", key)
		}
		seen[key] = true

		switch key {
		case "builder":
			opts.Builder = "New" + typeName + "Builder"
			if hasValue {
				if !token.IsIdentifier(value) {
					return Options{}, p.wrapf(c, ErrInvalidDirective, "builder %q is not an identifier", value)
				}
				opts.Builder = value
			}
		default:
			return Options{}, p.wrapf(c, ErrInvalidDirective, "unknown option %q", arg)
		}
	}

	return opts, nil
}
