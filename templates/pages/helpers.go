package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// component wraps a writer func as a templ.Component
func component(fn func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(w)
	})
}

// esc HTML-escapes a dynamic value
func esc(s string) string {
	return templ.EscapeString(s)
}

// renderInline renders a nested component into the current writer
func renderInline(w io.Writer, c templ.Component) error {
	return c.Render(context.Background(), w)
}
