package jsontestgeninternal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/diag"
	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
)

var Version string

// Main is the main entry point for jsontestgen. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when loading packages. cfg is the validated
// configuration. And patterns are the package patterns to process. Warnings
// and notes go to sink.
//
// It returns a map of output file paths to their contents. The map holds every
// unit which could be generated even if an error is returned. The error joins
// the failures of all types and packages.
func Main(ctx context.Context, wd string, env []string, cfg Config, patterns []string, sink *diag.Sink) (map[string][]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pkgs, err := load(ctx, wd, env, cfg.Tags, cfg.Tests, patterns)
	if err != nil {
		return nil, err
	}

	opts := cfg.ComposeOptions()
	outs := make(map[string][]byte)
	dirs := make(map[string]codefmt.NS) // output directory -> taken file names
	var errs error

	for _, pkg := range pkgs {
		g, err := New(pkg, opts, sink)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		dir := g.Dir()
		if dirs[dir] == nil {
			dirs[dir] = g.takenFileNames()
		}
		g.UseFileNames(dirs[dir])

		units, warns, err := g.Run()
		for _, warn := range warns {
			sink.Warn(warn)
		}
		if err != nil {
			errs = errors.Join(errs, err)
		}
		if len(units) == 0 {
			continue
		}

		outDir := dir
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		for _, unit := range units {
			outs[filepath.Join(outDir, unit.FileName)] = unit.Source
		}
	}

	return outs, reorderErrors(errs)
}

// load loads packages. Files generated by jsontestgen are excluded by the
// build tag.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + compose.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	pkgs = selectPackages(pkgs)
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			errs = append(errs, relPackageError(wd, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return pkgs, nil
}

// relPackageError rewrites the position of err relative to wd.
func relPackageError(wd string, err packages.Error) error {
	if err.Pos == "" {
		return errors.New(err.Msg)
	}
	path, rowcol, _ := strings.Cut(err.Pos, ":")
	if rel, relErr := filepath.Rel(wd, path); relErr == nil {
		err.Pos = rel + ":" + rowcol
	}
	return err
}

// selectPackages drops the packages which should not be generated for. When
// tests are loaded, a package appears again with its test files as
// "p [p.test]". The variant is preferred because it sees the names declared
// in the test files. Test binaries are dropped.
func selectPackages(pkgs []*packages.Package) []*packages.Package {
	hasVariant := make(map[string]bool)
	for _, pkg := range pkgs {
		if pkg.ID == pkg.PkgPath+" ["+pkg.PkgPath+".test]" {
			hasVariant[pkg.PkgPath] = true
		}
	}

	return slices.DeleteFunc(slices.Clone(pkgs), func(pkg *packages.Package) bool {
		switch {
		case strings.HasSuffix(pkg.ID, ".test"):
			return true
		case pkg.ID == pkg.PkgPath && hasVariant[pkg.PkgPath]:
			return true
		case len(pkg.GoFiles) == 0:
			return true
		}
		return false
	})
}

// reorderErrors flattens joined errors and sorts them by message, so that
// positioned errors come out grouped by file and line.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}
	list := flatten(errs, nil)
	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}

func flatten(err error, list []error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return append(list, err)
	}
	for _, err := range joined.Unwrap() {
		list = flatten(err, list)
	}
	return list
}

// WriteFiles writes the outputs in path order. A failed write is reported to
// sink and does not stop the others. It returns the paths written.
func WriteFiles(outs map[string][]byte, sink *diag.Sink) []string {
	paths := make([]string, 0, len(outs))
	for path := range outs {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	var written []string
	for _, path := range paths {
		if err := os.WriteFile(path, outs[path], 0o644); err != nil {
			sink.Error(fmt.Errorf("failed to write %s: %w", path, err))
			continue
		}
		written = append(written, path)
	}
	return written
}
