// Copyright © 2025 The gnaw authors

package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/luthersystems/gnaw/diagnostic"
	"github.com/luthersystems/gnaw/sexpr"
)

// renderError renders a parse error using the diagnostic renderer for
// Rust-style annotated output. REPL input has no file behind it, so the
// highlighted span carries the offending line inline.
func renderError(w io.Writer, err error) {
	perr := &sexpr.Error{}
	if !errors.As(err, &perr) {
		fmt.Fprintln(w, err) //nolint:errcheck // best-effort error display
		return
	}
	d := perr.Diagnostic("<repl>")
	d.Notes = append(d.Notes, "see 'gnaw kinds' for the full error taxonomy")
	r := &diagnostic.Renderer{Color: diagnostic.ColorAuto}
	_ = r.Render(w, d)
}
