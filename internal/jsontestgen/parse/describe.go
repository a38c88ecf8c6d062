package parse

import (
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/sublee/jsontestgen/internal/codefmt"
	"github.com/sublee/jsontestgen/internal/typeinfo"
)

// MemberKind classifies a struct member by how encoding/json treats it.
type MemberKind int

const (
	// FieldMember is an exported, named field.
	FieldMember MemberKind = iota

	// EmbeddedMember is an embedded field. encoding/json inlines its fields.
	EmbeddedMember

	// UnexportedMember is an unexported field. encoding/json ignores it.
	UnexportedMember
)

// Member is a struct member as seen by the metadata model.
type Member struct {
	Name string
	Type typeinfo.Type
	Pos  token.Pos
	Kind MemberKind

	// Tagged indicates that the member has a json struct tag.
	Tagged bool

	// Ignored indicates the `json:"-"` tag.
	Ignored bool

	// ExternalName is the name in the json tag. It is empty if the tag does
	// not name the member.
	ExternalName string

	// TagOptions are the comma-separated options after the name in the json
	// tag, such as "omitempty".
	TagOptions []string
}

// TypeMeta is everything generation needs to know about a candidate type.
type TypeMeta struct {
	PkgName string
	PkgPath string
	Name    string
	Pos     token.Pos
	Options Options

	// Members are the struct members in declaration order.
	Members []Member

	// Reserved are the names already declared in the package scope.
	Reserved []string

	// Fmt formats positions and types in diagnostics.
	Fmt codefmt.Formatter
}

// QualifiedName returns the type name qualified by the package path.
func (m TypeMeta) QualifiedName() string {
	return m.PkgPath + "." + m.Name
}

// Describe reads the members of the candidate type. It is the only place
// where generation looks at go/types.
func (p *Parser) Describe(c Candidate) TypeMeta {
	st := c.Obj.Type().Underlying().(*types.Struct)

	members := make([]Member, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		m := Member{
			Name: field.Name(),
			Type: typeinfo.TypeOf(field.Type()),
			Pos:  field.Pos(),
			Kind: FieldMember,
		}
		switch {
		case field.Embedded():
			m.Kind = EmbeddedMember
		case !field.Exported():
			m.Kind = UnexportedMember
		}

		if tag, ok := reflect.StructTag(st.Tag(i)).Lookup("json"); ok {
			m.Tagged = true
			if tag == "-" {
				m.Ignored = true
			} else {
				name, opts, _ := strings.Cut(tag, ",")
				m.ExternalName = name
				if opts != "" {
					m.TagOptions = strings.Split(opts, ",")
				}
			}
		}

		members = append(members, m)
	}

	return TypeMeta{
		PkgName:  p.pkg.Name,
		PkgPath:  p.pkg.PkgPath,
		Name:     c.Name(),
		Pos:      c.Pos(),
		Options:  c.Options,
		Members:  members,
		Reserved: p.Reserved(),
		Fmt:      p.fmt,
	}
}
