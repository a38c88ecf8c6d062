package jsontestgeninternal_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/jsontestgen/internal/diag"
	jsontestgeninternal "github.com/sublee/jsontestgen/internal/jsontestgen"
)

func TestReorderErrors(t *testing.T) {
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")

	err := jsontestgeninternal.ReorderErrors(errors.Join(c, errors.Join(b, a)))
	assert.Equal(t, "a\nb\nc", err.Error())
	assert.ErrorIs(t, err, b)

	assert.NoError(t, jsontestgeninternal.ReorderErrors(nil))
}

func TestSelectPackages(t *testing.T) {
	files := []string{"x.go"}
	pkgs := []*packages.Package{
		{ID: "example.com/a", PkgPath: "example.com/a", GoFiles: files},
		{ID: "example.com/a [example.com/a.test]", PkgPath: "example.com/a", GoFiles: files},
		{ID: "example.com/a_test [example.com/a.test]", PkgPath: "example.com/a_test", GoFiles: files},
		{ID: "example.com/a.test", PkgPath: "example.com/a.test", GoFiles: files},
		{ID: "example.com/b", PkgPath: "example.com/b", GoFiles: files},
		{ID: "example.com/empty", PkgPath: "example.com/empty"},
	}

	var ids []string
	for _, pkg := range jsontestgeninternal.SelectPackages(pkgs) {
		ids = append(ids, pkg.ID)
	}
	assert.Equal(t, []string{
		"example.com/a [example.com/a.test]",
		"example.com/a_test [example.com/a.test]",
		"example.com/b",
	}, ids)
	assert.Len(t, pkgs, 6)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a_test.go")
	b := filepath.Join(dir, "b_test.go")
	c := filepath.Join(dir, "missing", "c_test.go")
	outs := map[string][]byte{b: []byte("b"), a: []byte("a"), c: []byte("c")}

	sink := diag.Discard()
	written := jsontestgeninternal.WriteFiles(outs, sink)

	assert.Equal(t, []string{a, b}, written)
	assert.EqualValues(t, 1, sink.Errors())

	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}
