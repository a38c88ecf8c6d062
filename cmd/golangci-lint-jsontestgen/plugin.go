// golangcilintjsontestgen package provides a plugin for golangci-lint to
// integrate the jsontestgen analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-jsontestgen binary that reports the
// annotated types jsontestgen cannot generate tests for.
package golangcilintjsontestgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/jsontestgen/pkg/jsontestgenanalysis"
)

func init() {
	register.Plugin("jsontestgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return JSONTestgenLinter{}, nil
}

type JSONTestgenLinter struct{}

func (JSONTestgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{jsontestgenanalysis.Analyzer}, nil
}

// GetLoadMode requires type information because field types decide whether a
// test can be generated.
func (JSONTestgenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
