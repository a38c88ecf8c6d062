package typeinfo

import (
	"fmt"
	"go/types"
)

// Type holds the structure of a [types.Type] that decides how a JSON field
// can be sampled. At most one of the structural fields is set, except Named
// which accompanies the structure of its underlying type.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Array     *types.Array
	Slice     *types.Slice
	Map       *types.Map
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named
}

func (t Type) String() string { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsArray() bool     { return t.Array != nil }
func (t Type) IsSlice() bool     { return t.Slice != nil }
func (t Type) IsMap() bool       { return t.Map != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }

// TypeOf inspects the given type and returns a new [Type]. Aliases are
// resolved. A named type carries the structure of its underlying type.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Array:
		return Type{T: t, Array: tt}
	case *types.Slice:
		return Type{T: t, Slice: tt}
	case *types.Map:
		return Type{T: t, Map: tt}
	case *types.Struct:
		return Type{T: t, Struct: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		return Type{T: t, Pointer: tt}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	case *types.Signature, *types.Chan, *types.TypeParam:
		return Type{T: t}
	}
	panic(fmt.Errorf("unknown type: %T", t))
}

// Method returns the exported method with the given name in the method set of
// the type or of its pointer. It returns nil and false if there is no such
// method.
func (t Type) Method(name string) (*types.Func, bool) {
	for _, typ := range []types.Type{t.T, types.NewPointer(t.T)} {
		sel := types.NewMethodSet(typ).Lookup(nil, name)
		if sel == nil {
			continue
		}
		if fn, ok := sel.Obj().(*types.Func); ok {
			return fn, true
		}
	}
	return nil, false
}
