// Package diag is the diagnostics channel of jsontestgen. It receives
// human-facing notes, warnings and errors from every stage of generation.
//
// A [Sink] is safe for concurrent use: each message is written by a single
// slog record, and the handler serializes records.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
)

// Sink collects diagnostics.
type Sink struct {
	log   *slog.Logger
	warns atomic.Int64
	errs  atomic.Int64
}

// Notifier receives advisory notes.
type Notifier interface {
	Notef(format string, args ...any)
}

// New creates a [Sink] writing plain text records to w. Notes are written only
// when verbose is true.
func New(w io.Writer, verbose bool) *Sink {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Generation is reproducible. So are its diagnostics.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Sink{log: slog.New(handler)}
}

// Discard creates a [Sink] which only counts warnings and errors.
func Discard() *Sink {
	return New(io.Discard, false)
}

// Notef reports an informational message.
func (s *Sink) Notef(format string, args ...any) {
	s.log.Log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warn reports a recoverable problem. The affected element has been skipped.
func (s *Sink) Warn(err error) {
	s.warns.Add(1)
	s.log.Log(context.Background(), slog.LevelWarn, err.Error())
}

// Error reports a failure. Processing of unrelated elements goes on.
func (s *Sink) Error(err error) {
	s.errs.Add(1)
	s.log.Log(context.Background(), slog.LevelError, err.Error())
}

// Warnings returns the number of warnings reported so far.
func (s *Sink) Warnings() int64 { return s.warns.Load() }

// Errors returns the number of errors reported so far.
func (s *Sink) Errors() int64 { return s.errs.Load() }
