// Package jsontestgenanalysis provides an analyzer which reports the struct
// types that jsontestgen cannot generate JSON tests for.
package jsontestgenanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/diag"
	jsontestgeninternal "github.com/sublee/jsontestgen/internal/jsontestgen"
	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
)

// Analyzer validates the types annotated with //jsontestgen:generate.
var Analyzer = &analysis.Analyzer{
	Name: "jsontestgen",
	Doc:  "linter for jsontestgen directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	g, err := jsontestgeninternal.New(pkg, compose.Options{}, diag.Discard())
	if err != nil {
		return nil, err
	}

	_, warns, err := g.Run()
	report(pass, errors.Join(append(warns, err)...))
	return nil, nil
}

// report unrolls all errors and reports the ones with a position.
func report(pass *analysis.Pass, err error) {
	if err == nil {
		return
	}

	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*codefmt.CodeError); ok {
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(),
				Message: codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
		}
	}
}
