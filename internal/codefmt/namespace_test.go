package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "answer42", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_2", name)
	assert.True(t, more)
}

func TestNSName(t *testing.T) {
	ns := NewNS("json", "codecPointJSON")

	assert.Equal(t, "json2", ns.Name("json"))
	assert.Equal(t, "json3", ns.Name("json"))
	assert.Equal(t, "codecPointJSON2", ns.Name("codecPointJSON"))
	assert.Equal(t, "assert", ns.Name("assert"))
	assert.True(t, ns.Has("assert"))
}

func TestNSClone(t *testing.T) {
	ns := NewNS("a")
	clone := ns.Clone()
	clone.Reserve("b")

	assert.True(t, clone.Has("a"))
	assert.False(t, ns.Has("b"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "pointJson", NormalizeName("point-json"))
	assert.Equal(t, "goJSON", NormalizeName("go-JSON"))
	assert.Panics(t, func() { NormalizeName("") })
}

func TestNSNameKeyword(t *testing.T) {
	ns := NewNS()
	assert.Equal(t, "type_", ns.Name("type"))
	assert.Equal(t, "type_2", ns.Name("type"))
}
