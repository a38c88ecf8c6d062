package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"io"

	"github.com/sublee/jsontestgen/internal/typeinfo"
)

// verbArg wraps a printf argument which the formatter knows how to render.
//
//	%t: types.Type or typeinfo.Type, qualified relative to the package
//	%b: token.Pos or token.Position, as file:line:column
//
// Other verbs fall back to the fmt package.
type verbArg struct {
	x   any
	fmt Formatter
}

func (f Formatter) wrapArgs(args []any) []any {
	for i, arg := range args {
		switch arg.(type) {
		case types.Type, typeinfo.Type, token.Pos, token.Position:
			args[i] = verbArg{arg, f}
		}
	}
	return args
}

func (a verbArg) typ() types.Type {
	switch x := a.x.(type) {
	case types.Type:
		return x
	case typeinfo.Type:
		return x.T
	}
	return nil
}

func (a verbArg) position() (token.Position, bool) {
	switch x := a.x.(type) {
	case token.Position:
		return x, true
	case token.Pos:
		return a.fmt.Position(x), true
	}
	return token.Position{}, false
}

// Format implements [fmt.Formatter].
func (a verbArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 't':
		if typ := a.typ(); typ != nil {
			_, _ = io.WriteString(s, a.fmt.Type(typ))
			return
		}
	case 'b':
		if pos, ok := a.position(); ok {
			_, _ = io.WriteString(s, FormatPosition(pos))
			return
		}
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
		return
	}
	fmt.Fprintf(s, "[%%%c cannot format %T]", verb, a.x)
}

func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapArgs(args)...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapArgs(args)...)
}
