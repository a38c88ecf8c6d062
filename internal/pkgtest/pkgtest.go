// Package pkgtest type-checks Go source in memory for tests.
package pkgtest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// PkgPath is the import path of loaded packages.
const PkgPath = "example.com/geo"

// File is a source file.
type File struct {
	Name   string
	Source string
}

// Load type-checks the files as a package at [PkgPath]. The package looks like
// one loaded by [packages.Load] except that it has no file paths on disk.
func Load(t testing.TB, files ...File) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	syntax := make([]*ast.File, len(files))
	for i, f := range files {
		file, err := parser.ParseFile(fset, f.Name, f.Source, parser.ParseComments)
		require.NoError(t, err)
		syntax[i] = file
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check(PkgPath, fset, syntax, info)
	require.NoError(t, err)

	return &packages.Package{
		ID:        PkgPath,
		Name:      pkg.Name(),
		PkgPath:   PkgPath,
		Fset:      fset,
		Syntax:    syntax,
		Types:     pkg,
		TypesInfo: info,
	}
}

// Source is a shorthand for [Load] with a single file named after the
// package.
func Source(t testing.TB, src string) *packages.Package {
	t.Helper()
	return Load(t, File{Name: path.Base(PkgPath) + ".go", Source: src})
}
