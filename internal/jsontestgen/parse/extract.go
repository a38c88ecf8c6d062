package parse

import (
	"go/token"
	"slices"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/diag"
	"github.com/sublee/jsontestgen/internal/typeinfo"
)

// FieldDescriptor is a struct field with an explicit JSON name.
type FieldDescriptor struct {
	// Type is the declared type of the field.
	Type typeinfo.Type

	// MemberName is the Go name of the field. It is also the method name in
	// a builder chain.
	MemberName string

	// ExternalName is the JSON object key of the field. It is never empty.
	ExternalName string

	// TagOptions are the json tag options of the field.
	TagOptions []string

	Pos token.Pos
}

// HasTagOption reports whether the json tag of the field has the option.
func (f FieldDescriptor) HasTagOption(opt string) bool {
	return slices.Contains(f.TagOptions, opt)
}

// Extract collects the fields with explicit JSON names in declaration order.
//
// Members without a JSON name are skipped. Exported ones are reported in
// warns since encoding/json still encodes them by their Go names. A name that
// encoding/json rejects, such as "it's", counts as no name. Embedded and
// unexported members with a JSON name are unsupported elements: they are
// reported in warns and skipped.
//
// A JSON name shared by two fields fails the whole type. An empty result
// means that there is nothing to generate for the type.
func Extract(meta TypeMeta, n diag.Notifier) (fields []FieldDescriptor, warns []error, err error) {
	byName := linkedhashmap.New() // external name -> FieldDescriptor

	for _, m := range meta.Members {
		switch {
		case m.Ignored:
			continue

		case m.Kind == EmbeddedMember:
			warns = append(warns, meta.Fmt.Wrapf(posOf(m), ErrUnsupportedElementKind, "embedded field %s of %s is skipped", m.Name, meta.Name))
			continue

		case m.Kind == UnexportedMember:
			if m.Tagged {
				warns = append(warns, meta.Fmt.Wrapf(posOf(m), ErrUnsupportedElementKind, "unexported field %s of %s is skipped; encoding/json ignores it", m.Name, meta.Name))
			}
			continue

		case m.ExternalName == "":
			warns = append(warns, meta.Fmt.Wrapf(posOf(m), ErrMissingName, "field %s of %s has no JSON name; encoding/json writes it as %q", m.Name, meta.Name, m.Name))
			continue

		case !validName(m.ExternalName):
			warns = append(warns, meta.Fmt.Wrapf(posOf(m), ErrMissingName, "field %s of %s has invalid JSON name %q; encoding/json writes it as %q", m.Name, meta.Name, m.ExternalName, m.Name))
			continue
		}

		if prev, ok := byName.Get(m.ExternalName); ok {
			return nil, warns, meta.Fmt.Wrapf(posOf(m), ErrDuplicateName, "fields %s and %s of %s are both named %q", prev.(FieldDescriptor).MemberName, m.Name, meta.Name, m.ExternalName)
		}

		n.Notef("found JSON field `%s %s` of %s with name %q", m.Name, meta.Fmt.Type(m.Type.T), meta.Name, m.ExternalName)
		byName.Put(m.ExternalName, FieldDescriptor{
			Type:         m.Type,
			MemberName:   m.Name,
			ExternalName: m.ExternalName,
			TagOptions:   m.TagOptions,
			Pos:          m.Pos,
		})
	}

	for _, v := range byName.Values() {
		fields = append(fields, v.(FieldDescriptor))
	}
	return fields, warns, nil
}

func posOf(m Member) codefmt.Poser { return codefmt.Pos(m.Pos) }

// validName reports whether encoding/json accepts name from a struct tag.
// Other names are ignored and the field is encoded under its Go name.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case strings.ContainsRune("!#$%&()*+-./:;<=>?@[]^_{|}~ ", c):
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			return false
		}
	}
	return true
}
