// Package jsontestgeninternal generates JSON round-trip tests for the struct
// types annotated with the //jsontestgen:generate directive.
package jsontestgeninternal

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/diag"
	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
	"github.com/sublee/jsontestgen/internal/jsontestgen/parse"
)

// Generator generates the test units of a package. The types are generated
// concurrently but the result is in declaration order.
type Generator struct {
	p     *parse.Parser
	opts  compose.Options
	n     diag.Notifier
	files codefmt.NS
}

// New creates a new [Generator] for the given package. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package, opts compose.Options, n diag.Notifier) (*Generator, error) {
	p, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}
	if _, err := compose.LookupCodec(opts.Codec); err != nil {
		return nil, err
	}
	return &Generator{p: p, opts: opts, n: n}, nil
}

// UseFileNames makes [Generator.Run] reserve the output file names in files
// instead of a namespace of its own. Packages sharing a directory, like p and
// p_test, must share files so that their units never get the same path.
func (g *Generator) UseFileNames(files codefmt.NS) { g.files = files }

// Run generates the test units of the package in declaration order. Each unit
// has a file name unique in the package directory.
//
// A failure of a type never stops the others. The failures are joined in err.
// warns are the skipped elements.
func (g *Generator) Run() (units []*compose.Unit, warns []error, err error) {
	cands, warns, errs := g.p.Discover()

	metas := make([]parse.TypeMeta, len(cands))
	for i, c := range cands {
		metas[i] = g.p.Describe(c)
	}

	type result struct {
		unit  *compose.Unit
		warns []error
		err   error
	}
	results := make([]result, len(metas))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, meta := range metas {
		eg.Go(func() error {
			unit, warns, err := Generate(meta, g.opts, g.n)
			results[i] = result{unit, warns, err}
			return nil
		})
	}
	_ = eg.Wait()

	files := g.files
	if files == nil {
		files = g.takenFileNames()
	}
	for _, r := range results {
		warns = append(warns, r.warns...)
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		if r.unit == nil {
			continue
		}

		r.unit.FileName = reserveFileName(files, r.unit.FileName)
		units = append(units, r.unit)
	}

	return units, warns, errors.Join(errs...)
}

// takenFileNames returns the base names of the files in the package and in
// its directory except the ones generated by jsontestgen. The directory holds
// files of other packages too, such as the external test package.
func (g *Generator) takenFileNames() codefmt.NS {
	pkg := g.p.Pkg()
	paths := slices.Concat(pkg.GoFiles, pkg.OtherFiles, pkg.IgnoredFiles)
	if dir := g.Dir(); dir != "" {
		ents, _ := os.ReadDir(dir)
		for _, ent := range ents {
			if !ent.IsDir() {
				paths = append(paths, filepath.Join(dir, ent.Name()))
			}
		}
	}

	ns := codefmt.NewNS()
	for _, path := range paths {
		if isGeneratedPath(path) {
			continue
		}
		ns.Reserve(filepath.Base(path))
	}
	return ns
}

// Dir returns the directory of the package, where the units are written. It
// is empty if the package has no Go files on disk.
func (g *Generator) Dir() string {
	pkg := g.p.Pkg()
	if len(pkg.GoFiles) == 0 {
		return ""
	}
	return filepath.Dir(pkg.GoFiles[0])
}

func reserveFileName(files codefmt.NS, name string) string {
	stem := strings.TrimSuffix(name, "_test.go")
	for stem := range codefmt.DisambiguateName(stem) {
		if files.Reserve(stem + "_test.go") {
			return stem + "_test.go"
		}
	}
	panic("unreachable")
}

// isGeneratedPath reports whether the file at path starts with the header of
// jsontestgen.
func isGeneratedPath(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, len(parse.GeneratedHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return string(header) == parse.GeneratedHeader
}
