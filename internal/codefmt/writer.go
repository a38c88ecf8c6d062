package codefmt

import (
	"cmp"
	"io"
	"maps"
	"slices"
	"strconv"
)

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	fmt     Formatter
	imports map[string]Import
	ns      NS
}

// NewWriter creates a new [Writer]. Import names are chosen so that they do
// not collide with any name reserved in ns.
func NewWriter(w io.Writer, f Formatter, ns NS) *Writer {
	if ns == nil {
		ns = make(NS)
	}
	return &Writer{
		w:       w,
		fmt:     f,
		imports: make(map[string]Import),
		ns:      ns,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}

// WithBuf copies the writer and sets a new write buffer. The copy shares
// imports and the namespace.
func (w *Writer) WithBuf(buf io.Writer) *Writer {
	return &Writer{
		w:       buf,
		fmt:     w.fmt,
		imports: w.imports,
		ns:      w.ns,
	}
}

// NS returns the namespace of the writer.
func (w *Writer) NS() NS { return w.ns }

type Import struct {
	// Path is the import path.
	Path string

	// Name is the name to refer the package in the generated code.
	Name string

	// HasAlias indicates that the import needs an explicit name.
	HasAlias bool
}

// Imports returns the collected imports sorted by path.
func (w *Writer) Imports() []Import {
	imports := slices.Collect(maps.Values(w.imports))
	slices.SortFunc(imports, func(a, b Import) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return imports
}

// Import adds an import for the package with the given path. name is the
// package name declared by the package itself. It returns the name to refer
// the package with. The name differs from the given one if it conflicts with a
// name in the namespace.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
func (w *Writer) Import(path, name string) string {
	if imp, ok := w.imports[path]; ok {
		return imp.Name
	}

	for alias := range DisambiguateName(name) {
		if w.ns.Reserve(alias) {
			w.imports[path] = Import{Path: path, Name: alias, HasAlias: alias != name}
			return alias
		}
	}

	panic("unreachable")
}

// WriteImports writes an import declaration for the collected imports.
// Standard library imports are grouped before the others.
func (w *Writer) WriteImports() {
	if len(w.imports) == 0 {
		return
	}

	var std, others []Import
	for _, imp := range w.Imports() {
		if isStdPath(imp.Path) {
			std = append(std, imp)
		} else {
			others = append(others, imp)
		}
	}

	w.Printf("import (\n")
	for i, group := range [][]Import{std, others} {
		if len(group) == 0 {
			continue
		}
		if i != 0 && len(std) != 0 {
			w.Printf("\n")
		}
		for _, imp := range group {
			if imp.HasAlias {
				w.Printf("\t%s %s\n", imp.Name, strconv.Quote(imp.Path))
			} else {
				w.Printf("\t%s\n", strconv.Quote(imp.Path))
			}
		}
	}
	w.Printf(")\n")
}

// isStdPath reports whether the import path belongs to the standard library,
// whose first element never contains a dot.
func isStdPath(path string) bool {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '.':
			return false
		case '/':
			return true
		}
	}
	return true
}
