package codefmt

import (
	"fmt"
	"go/token"
	"iter"
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS is a set of identifiers taken in one scope of a generated file. The
// package scope of the annotated package seeds it so that imports, package
// variables and test functions never shadow or redeclare user names.
type NS map[string]struct{}

func NewNS(names ...string) NS {
	ns := make(NS, len(names))
	for _, name := range names {
		ns.Reserve(name)
	}
	return ns
}

// Reserve takes name. It returns false if name was already taken.
func (ns NS) Reserve(name string) bool {
	if ns.Has(name) {
		return false
	}
	ns[name] = struct{}{}
	return true
}

func (ns NS) Has(name string) bool {
	_, ok := ns[name]
	return ok
}

// Clone returns an independent copy, typically for a function body which
// may reuse names across functions but not the package scope.
func (ns NS) Clone() NS {
	if ns == nil {
		return make(NS)
	}
	return maps.Clone(ns)
}

// Name takes and returns the first free candidate of [DisambiguateName] for
// the normalized name. Keywords get a trailing underscore first. A nil NS
// takes nothing.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if token.IsKeyword(name) {
		name += "_"
	}
	if ns == nil {
		return name
	}
	for cand := range DisambiguateName(name) {
		if ns.Reserve(cand) {
			return cand
		}
	}
	panic("unreachable")
}

// NormalizeName drops characters which cannot appear in a Go identifier and
// title-cases the chunks after the first one.
//
//	NormalizeName("point-json") // "pointJson"
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_')
	})
	title := cases.Title(language.English, cases.NoLower)
	for i := 1; i < len(chunks); i++ {
		chunks[i] = title.String(chunks[i])
	}
	return strings.Join(chunks, "")
}

// DisambiguateName yields name and then numbered variants of it: "x", "x2",
// "x3" and so on. A name ending in a digit is separated by an underscore, as
// in "v1_2".
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		sep := ""
		if last := name[len(name)-1]; '0' <= last && last <= '9' {
			sep = "_"
		}
		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
