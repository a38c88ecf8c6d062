package codefmt

import (
	"errors"
	"fmt"
	"go/token"
)

type (
	// Poser is anything with a position in the loaded source.
	Poser interface{ Pos() token.Pos }
	// Ender extends a [Poser] to a range.
	Ender interface{ End() token.Pos }
)

type pos token.Pos

func (p pos) Pos() token.Pos { return token.Pos(p) }

// Pos makes a [Poser] of a bare position.
func Pos(p token.Pos) Poser { return pos(p) }

// CodeError is an error located in the user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

func (e CodeError) Unwrap() error { return e.err }

// Pos returns where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns where the erroneous range ends. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Error prefixes the message with the position when it is known.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}
	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// Errorf formats a [CodeError] at poser, which may be nil. Arguments are
// rendered as in [Formatter.Sprintf]. Errors cannot be wrapped this way; use
// [Formatter.Wrapf] instead.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}
	return f.newCodeError(poser, errors.New(f.Sprintf(format, args...)))
}

// Wrapf is like [Formatter.Errorf] but the error also matches kind with
// [errors.Is]. The message is prefixed with kind.
func (f Formatter) Wrapf(poser Poser, kind error, format string, args ...any) error {
	if kind == nil {
		return f.Errorf(poser, format, args...)
	}
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}
	return f.newCodeError(poser, fmt.Errorf("%w: %s", kind, f.Sprintf(format, args...)))
}

func (f Formatter) newCodeError(poser Poser, err error) *CodeError {
	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}
	return &CodeError{err, pos, end, f.Fset}
}
