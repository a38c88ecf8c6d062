package jsontestgeninternal

import (
	"github.com/sublee/jsontestgen/internal/diag"
	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
	"github.com/sublee/jsontestgen/internal/jsontestgen/parse"
	"github.com/sublee/jsontestgen/internal/jsontestgen/sample"
)

// Generate generates the test unit of a single type. It neither reads nor
// writes anything but its arguments, except for the notes sent to n.
//
// A type without JSON fields yields neither a unit nor an error. warns are
// problems which did not stop generation.
func Generate(meta parse.TypeMeta, opts compose.Options, n diag.Notifier) (unit *compose.Unit, warns []error, err error) {
	n.Notef("processing %s", meta.QualifiedName())
	fields, warns, err := parse.Extract(meta, n)
	if err != nil {
		return nil, warns, err
	}
	if len(fields) == 0 {
		n.Notef("%s has no JSON fields; skipped", meta.QualifiedName())
		return nil, warns, nil
	}

	samples, err := sample.SynthesizeAll(fields, meta.Fmt)
	if err != nil {
		return nil, warns, err
	}

	unit, err = compose.Compose(meta, samples, opts)
	if err != nil {
		return nil, warns, err
	}

	n.Notef("composed %s for %s with %d fields", unit.Name, meta.QualifiedName(), len(samples))
	return unit, warns, nil
}
