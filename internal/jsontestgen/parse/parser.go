package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/typeinfo"
)

// GeneratedHeader starts the first comment of every file written by
// jsontestgen.
const GeneratedHeader = "// Code generated by github.com/sublee/jsontestgen"

// Parser parses an AST of the underlying package to collect the types to
// generate JSON tests for.
type Parser struct {
	pkg       *packages.Package
	fmt       codefmt.Formatter
	generated map[*token.File]bool
	reserved  []string
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}

	p := &Parser{
		pkg:       pkg,
		fmt:       codefmt.New(pkg),
		generated: make(map[*token.File]bool),
	}
	for _, file := range pkg.Syntax {
		if IsGeneratedFile(file) {
			p.generated[pkg.Fset.File(file.Pos())] = true
		}
	}
	p.reserved = p.collectReserved()
	return p, nil
}

// IsGeneratedFile reports whether the file was written by jsontestgen.
func IsGeneratedFile(file *ast.File) bool {
	if len(file.Comments) == 0 {
		return false
	}
	first := file.Comments[0]
	if first.Pos() > file.Package {
		return false
	}
	return strings.HasPrefix(first.List[0].Text, GeneratedHeader)
}

func (p *Parser) errorf(poser codefmt.Poser, format string, args ...any) error {
	return p.fmt.Errorf(poser, format, args...)
}

func (p *Parser) wrapf(poser codefmt.Poser, kind error, format string, args ...any) error {
	return p.fmt.Wrapf(poser, kind, format, args...)
}

// Candidate is a struct type declaration carrying the directive.
type Candidate struct {
	Spec    *ast.TypeSpec
	Obj     *types.TypeName
	Options Options
}

// Name returns the type name.
func (c Candidate) Name() string { return c.Obj.Name() }

// Pos returns the position of the type name.
func (c Candidate) Pos() token.Pos { return c.Spec.Name.Pos() }

// Discover finds the struct types carrying the directive in declaration order.
//
// A directive on anything else is reported in warns and skipped. A malformed
// directive is reported in errs and its type is not returned. Neither stops
// discovery of the other types.
func (p *Parser) Discover() (cands []Candidate, warns, errs []error) {
	for _, file := range p.pkg.Syntax {
		if p.generated[p.pkg.Fset.File(file.Pos())] {
			continue
		}

		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if _, ok := findDirective(decl.Doc); ok {
					warns = append(warns, p.wrapf(decl.Name, ErrUnsupportedElementKind, "function %s cannot be annotated; only struct types are supported", decl.Name.Name))
				}

			case *ast.GenDecl:
				if decl.Tok != token.TYPE {
					if _, ok := findDirective(decl.Doc); ok {
						warns = append(warns, p.wrapf(decl, ErrUnsupportedElementKind, "%s declaration cannot be annotated; only struct types are supported", decl.Tok))
					}
					continue
				}

				for _, spec := range decl.Specs {
					spec := spec.(*ast.TypeSpec)

					doc := spec.Doc
					if doc == nil && len(decl.Specs) == 1 {
						doc = decl.Doc
					}
					c, ok := findDirective(doc)
					if !ok {
						continue
					}

					cand, err := p.candidate(spec, c)
					switch {
					case err == nil:
						cands = append(cands, cand)
					case errors.Is(err, ErrUnsupportedElementKind):
						warns = append(warns, err)
					default:
						errs = append(errs, err)
					}
				}
			}
		}
	}
	return cands, warns, errs
}

func (p *Parser) candidate(spec *ast.TypeSpec, c *ast.Comment) (Candidate, error) {
	name := spec.Name.Name

	if spec.Assign.IsValid() {
		return Candidate{}, p.wrapf(spec.Name, ErrUnsupportedElementKind, "alias %s cannot be annotated; annotate the aliased type instead", name)
	}
	if spec.TypeParams != nil {
		return Candidate{}, p.wrapf(spec.Name, ErrUnsupportedElementKind, "generic type %s is not supported", name)
	}

	obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return Candidate{}, p.wrapf(spec.Name, ErrUnsupportedElementKind, "cannot resolve type %s", name)
	}
	if !typeinfo.TypeOf(obj.Type()).IsStruct() {
		return Candidate{}, p.wrapf(spec.Name, ErrUnsupportedElementKind, "type %s is not a struct", name)
	}

	opts, err := p.parseDirective(c, name)
	if err != nil {
		return Candidate{}, err
	}
	if opts.Builder != "" {
		opts.BuildPointer = p.buildsPointer(opts.Builder, obj)
	}

	return Candidate{Spec: spec, Obj: obj, Options: opts}, nil
}

// buildsPointer reports whether NewXBuilder().Build() returns *X. If the
// builder cannot be resolved, it assumes a value is built.
func (p *Parser) buildsPointer(builder string, obj *types.TypeName) bool {
	fn, ok := p.pkg.Types.Scope().Lookup(builder).(*types.Func)
	if !ok {
		return false
	}

	results := fn.Signature().Results()
	if results.Len() == 0 {
		return false
	}

	build, ok := typeinfo.TypeOf(results.At(0).Type()).Method("Build")
	if !ok || build.Signature().Results().Len() == 0 {
		return false
	}

	built := typeinfo.TypeOf(build.Signature().Results().At(0).Type())
	return built.IsPointer() && types.Identical(built.Pointer.Elem(), obj.Type())
}

// Reserved returns the names declared in the package scope, sorted. Names
// declared in files generated by jsontestgen are excluded so that
// regeneration chooses the same names again.
func (p *Parser) Reserved() []string { return p.reserved }

func (p *Parser) collectReserved() []string {
	var names []string
	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if f := p.pkg.Fset.File(obj.Pos()); f != nil && p.generated[f] {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
