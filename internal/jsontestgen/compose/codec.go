package compose

import (
	"fmt"
	"slices"
	"strings"
)

// Codec is a JSON library which generated tests encode and decode with.
type Codec struct {
	// Name is the name in the configuration.
	Name string

	// Path is the import path.
	Path string

	// PkgName is the package name declared by the package itself.
	PkgName string

	// Marshal and Unmarshal are selectors on the package.
	Marshal   string
	Unmarshal string
}

// DefaultCodec is the name of the codec used when none is configured.
const DefaultCodec = "encoding/json"

var codecs = []Codec{
	{DefaultCodec, "encoding/json", "json", "Marshal", "Unmarshal"},
	{"goccy", "github.com/goccy/go-json", "json", "Marshal", "Unmarshal"},
	{"sonic", "github.com/bytedance/sonic", "sonic", "ConfigStd.Marshal", "ConfigStd.Unmarshal"},
}

// LookupCodec returns the codec with the name. An empty name means
// [DefaultCodec].
func LookupCodec(name string) (Codec, error) {
	if name == "" {
		name = DefaultCodec
	}
	i := slices.IndexFunc(codecs, func(c Codec) bool { return c.Name == name })
	if i < 0 {
		return Codec{}, fmt.Errorf("unknown codec %q; choose one of %s", name, strings.Join(CodecNames(), ", "))
	}
	return codecs[i], nil
}

// CodecNames returns the names of the supported codecs.
func CodecNames() []string {
	names := make([]string, len(codecs))
	for i, c := range codecs {
		names[i] = c.Name
	}
	return names
}
