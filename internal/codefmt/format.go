package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Formatter renders types and positions relative to one package. Types
// declared in that package are written without a qualifier.
type Formatter struct {
	PkgPath string
	Fset    *token.FileSet
}

func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkg.PkgPath, pkg.Fset}
}

func (f Formatter) qualifier(pkg *types.Package) string {
	if pkg.Path() == f.PkgPath {
		return ""
	}
	return pkg.Name()
}

// Type returns the type as it is spelled in the formatter's package.
//
//	f.Type(time.Duration) // "time.Duration"
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualifier)
}

// Position resolves pos with the formatter's file set. It returns the zero
// position when there is no file set.
func (f Formatter) Position(pos token.Pos) token.Position {
	if f.Fset == nil {
		return token.Position{}
	}
	return f.Fset.Position(pos)
}

var wd, _ = os.Getwd()

// FormatPosition renders pos as "file:line:column" with the file name
// relative to the working directory. An invalid position is "-:-".
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
