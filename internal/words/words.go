// Package words converts Go identifiers between naming conventions.
package words

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SnakeCase rewrites an identifier in lower snake case. Digit runs stick to
// the preceding word and underscore runs collapse.
//
//	SnakeCase("PointJSON")   // "point_json"
//	SnakeCase("HTTPServer")  // "http_server"
//	SnakeCase("Vec3Codec")   // "vec3_codec"
//	SnakeCase("send_nowait") // "send_nowait"
func SnakeCase(s string) string {
	rs := []rune(s)

	var b strings.Builder
	sep := false
	for i, r := range rs {
		if r == '_' {
			sep = b.Len() != 0
			continue
		}
		if i > 0 && b.Len() != 0 && boundary(rs, i) {
			sep = true
		}
		if sep {
			b.WriteByte('_')
			sep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// boundary reports whether a new word starts at rs[i].
func boundary(rs []rune, i int) bool {
	prev, curr := rs[i-1], rs[i]
	switch {
	case unicode.IsUpper(curr):
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			return true
		}
		// The last capital of an acronym starts the next word: "JSONParser".
		return unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1])
	case unicode.IsLetter(curr):
		return unicode.IsDigit(prev)
	}
	return false
}

// IsLower reports whether s starts with a lower-case letter.
func IsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}
