package typeinfo

import (
	"go/types"
)

// Category classifies a field type by the kind of sample value it can hold.
type Category int

const (
	Unsupported Category = iota
	Boolean
	Integral
	Character
	Floating
	String
)

func (c Category) String() string {
	switch c {
	case Boolean:
		return "boolean"
	case Integral:
		return "integral"
	case Character:
		return "character"
	case Floating:
		return "floating"
	case String:
		return "string"
	}
	return "unsupported"
}

// jsonHooks are the methods that let a type take over its own JSON encoding.
var jsonHooks = []string{"MarshalJSON", "UnmarshalJSON", "MarshalText", "UnmarshalText"}

// Category returns the category of the type.
//
// Booleans, integers, floats and runes are matched by their underlying kind so
// that named types like time.Duration are sampled as numbers. Strings are
// matched by identity with the predeclared string type only: a named string
// type is [Unsupported].
//
// A type that implements any of the JSON or text marshaling hooks is
// [Unsupported] because its encoding cannot be predicted from its kind.
func (t Type) Category() Category {
	cat, _ := t.CategoryReason()
	return cat
}

// CategoryReason is like [Type.Category] but also explains why an
// [Unsupported] type cannot be sampled.
func (t Type) CategoryReason() (Category, string) {
	if hook, ok := t.jsonHook(); ok {
		return Unsupported, "it implements " + hook
	}

	switch {
	case t.IsPointer():
		return Unsupported, "pointer types are not supported"
	case t.IsSlice(), t.IsArray(), t.IsMap():
		return Unsupported, "collection types are not supported"
	case t.IsStruct():
		return Unsupported, "nested objects are not supported"
	case t.IsInterface():
		return Unsupported, "interface types are not supported"
	case !t.IsBasic():
		return Unsupported, "it cannot be encoded as JSON"
	}

	if types.Identical(t.T, types.Typ[types.String]) {
		return String, ""
	}

	info := t.Basic.Info()
	switch {
	case info&types.IsBoolean != 0:
		return Boolean, ""
	case t.Basic.Kind() == types.Int32 && t.Basic.Name() == "rune":
		return Character, ""
	case info&types.IsInteger != 0:
		return Integral, ""
	case info&types.IsFloat != 0:
		return Floating, ""
	case info&types.IsString != 0:
		return Unsupported, "only the predeclared string type is supported"
	}
	return Unsupported, "it has no JSON sample"
}

func (t Type) jsonHook() (string, bool) {
	if t.IsBasic() && !t.IsNamed() {
		return "", false
	}
	for _, name := range jsonHooks {
		if _, ok := t.Method(name); ok {
			return name, true
		}
	}
	return "", false
}
