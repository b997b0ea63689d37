// Copyright © 2025 The gnaw authors

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/luthersystems/gnaw/diagnostic"
	"github.com/luthersystems/gnaw/sexpr"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// renderParseError renders a parse failure with diagnostic formatting to
// stderr. name is the display name for the input, typically its path.
func renderParseError(name string, perr *sexpr.Error) {
	d := perr.Diagnostic(name)
	d.Notes = append(d.Notes, "see 'gnaw kinds' for the full error taxonomy")
	r := newRenderer()
	_ = r.Render(os.Stderr, d)
}

// reportError renders err to stderr, using the annotated diagnostic form
// for parse failures and plain text otherwise.
func reportError(name string, err error) {
	perr := &sexpr.Error{}
	if errors.As(err, &perr) {
		renderParseError(name, perr)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
