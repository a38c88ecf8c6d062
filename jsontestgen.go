// Package jsontestgen generates JSON round-trip tests for struct types.
//
// Writing serialization tests by hand for every wire type is tedious, and the
// tests rot as soon as a field is renamed. jsontestgen reads the json struct
// tags of the types you annotate and writes a pair of tests for each of them:
// one checks that encoding an instance yields the expected JSON object, and
// the other checks that decoding the same JSON object yields an equal
// instance.
//
// To start with jsontestgen, annotate a struct type with the directive:
//
//	//jsontestgen:generate
//	type Point struct {
//		X int `json:"x"`
//		Y int `json:"y"`
//	}
//
// Then run the jsontestgen command. It writes point_json_test.go next to the
// type:
//
//	go run github.com/sublee/jsontestgen/cmd/jsontestgen ./...
//
// The generated tests build the same sample values twice, once as the object
// under test and once as an ordered JSON object:
//
//	// generated: (simplified)
//	func TestPointJSONSerialization(t *testing.T) {
//		expected := linkedhashmap.New()
//		expected.Put("x", 1)
//		expected.Put("y", 1)
//		value := Point{X: 1, Y: 1}
//		...
//		assert.Equal(t, string(want), string(have))
//	}
//
// # Sample values
//
// Every field with a JSON name in its tag gets a fixed sample value by its
// kind: true for booleans, 1 for integers, 'a' for runes, 1.1 for floats, and
// the Go name of the field for strings. A string field is sampled with its own
// name so that two fields swapped by mistake are easy to spot in a failure.
//
// Fields without a JSON name are skipped with a warning. Pointers,
// collections, nested structs, interfaces, named string types, and types
// with their own MarshalJSON or MarshalText methods are not supported. A type
// with such a field is reported and no test is generated for it. The other
// types are still generated.
//
// # Builders
//
// Types constructed by builders can be tested through the builder. The
// builder option calls NewTypeBuilder, then a method named after each field,
// and then Build:
//
//	//jsontestgen:generate builder
//	type Item struct { ... }
//
//	//jsontestgen:generate builder=MakeItem
//	type Item struct { ... }
//
// # Codecs
//
// The generated tests encode with encoding/json by default. The codec option
// switches them to github.com/goccy/go-json ("goccy") or
// github.com/bytedance/sonic ("sonic"). Options can be set by flags, by
// JSONTESTGEN_* environment variables, or in .jsontestgen.yaml:
//
//	codec: goccy
//	suffix: RoundTrip
//
// # Linting
//
// The analyzer in [github.com/sublee/jsontestgen/pkg/jsontestgenanalysis]
// reports the same problems at their positions without generating anything.
// It is also available as a golangci-lint module plugin.
package jsontestgen
