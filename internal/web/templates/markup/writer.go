// Package markup writes HTML for templ components built in Go
package markup

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments and keeps the first error
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Rawf formats and writes unescaped; escape untrusted arguments with Esc
func (w *Writer) Rawf(format string, args ...any) {
	w.Raw(fmt.Sprintf(format, args...))
}

// Text writes s HTML-escaped
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Component renders c inline
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}

// Esc escapes s for use in text or a quoted attribute
func Esc(s string) string {
	return templ.EscapeString(s)
}

// Func builds a component from a function that writes through a Writer
func Func(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := New(out)
		fn(ctx, w)
		return w.Err()
	})
}
