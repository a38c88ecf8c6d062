package typeinfo_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/jsontestgen/internal/typeinfo"
)

func parse(code string) (*ast.File, *types.Info, *types.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	if err != nil {
		return nil, nil, nil, err
	}

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	if err != nil {
		return nil, nil, nil, err
	}

	return file, info, pkg, nil
}

func parseType(typeExpr string) (types.Type, error) {
	return parseTypeWith("", typeExpr)
}

// parseTypeWith type-checks typeExpr next to the given declarations.
func parseTypeWith(decls, typeExpr string) (types.Type, error) {
	_, _, pkg, err := parse(fmt.Sprintf("package p\n%s\nvar x %s", decls, typeExpr))
	if err != nil {
		return nil, err
	}
	x := pkg.Scope().Lookup("x")
	return x.Type(), nil
}

func TestTypeOfPointer(t *testing.T) {
	ty, err := parseType("*int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsPointer())
	assert.False(t, ti.IsBasic())
}

func TestTypeOfNamed(t *testing.T) {
	ty, err := parseTypeWith("type myInt int", "myInt")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsNamed())
	assert.True(t, ti.IsBasic())
	assert.Equal(t, "pkg.myInt", ti.String())
}

func TestTypeOfAlias(t *testing.T) {
	ty, err := parseTypeWith("type ids = []int", "ids")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsSlice())
	assert.False(t, ti.IsNamed())
}

func TestTypeOfChan(t *testing.T) {
	ty, err := parseType("chan int")
	require.NoError(t, err)

	assert.NotPanics(t, func() { typeinfo.TypeOf(ty) })
}

func TestMethod(t *testing.T) {
	ty, err := parseTypeWith(`
type T int
func (*T) MarshalJSON() ([]byte, error) { return nil, nil }
`, "T")
	require.NoError(t, err)

	fn, ok := typeinfo.TypeOf(ty).Method("MarshalJSON")
	require.True(t, ok)
	assert.Equal(t, "MarshalJSON", fn.Name())

	_, ok = typeinfo.TypeOf(ty).Method("UnmarshalJSON")
	assert.False(t, ok)
}

func TestCategory(t *testing.T) {
	const decls = `
type Celsius float64
type Flag bool
type ID int64
type Name string
type Alias = string
type Letter rune
type Stamp int
func (Stamp) MarshalText() ([]byte, error) { return nil, nil }
type Nested struct{ X int }
`

	tests := []struct {
		typeExpr string
		want     typeinfo.Category
	}{
		{"bool", typeinfo.Boolean},
		{"Flag", typeinfo.Boolean},
		{"int", typeinfo.Integral},
		{"int8", typeinfo.Integral},
		{"uint64", typeinfo.Integral},
		{"byte", typeinfo.Integral},
		{"int32", typeinfo.Integral},
		{"ID", typeinfo.Integral},
		{"rune", typeinfo.Character},
		{"Letter", typeinfo.Character},
		{"float32", typeinfo.Floating},
		{"float64", typeinfo.Floating},
		{"Celsius", typeinfo.Floating},
		{"string", typeinfo.String},
		{"Alias", typeinfo.String},
		{"Name", typeinfo.Unsupported},
		{"Stamp", typeinfo.Unsupported},
		{"Nested", typeinfo.Unsupported},
		{"*int", typeinfo.Unsupported},
		{"[]int", typeinfo.Unsupported},
		{"[2]int", typeinfo.Unsupported},
		{"map[string]int", typeinfo.Unsupported},
		{"any", typeinfo.Unsupported},
		{"complex128", typeinfo.Unsupported},
		{"func()", typeinfo.Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.typeExpr, func(t *testing.T) {
			ty, err := parseTypeWith(decls, tt.typeExpr)
			require.NoError(t, err)

			cat, reason := typeinfo.TypeOf(ty).CategoryReason()
			assert.Equal(t, tt.want, cat)
			if cat == typeinfo.Unsupported {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "character", typeinfo.Character.String())
	assert.Equal(t, "unsupported", typeinfo.Category(99).String())
}
