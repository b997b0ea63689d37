// Copyright © 2025 The gnaw authors

package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Renderer formats diagnostics as Rust-style annotated source snippets.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// SourceReader reads source file contents. If nil, os.ReadFile is used.
	SourceReader func(string) ([]byte, error)
}

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	rw := newReportWriter(w, choosePalette(r.Color, fileFromWriter(w)))
	rw.header(d.Severity, d.Message)
	for _, span := range d.Spans {
		r.writeSpan(rw, span)
	}
	for _, note := range d.Notes {
		rw.note(note)
	}
	return rw.flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeSpan(rw *reportWriter, span Span) {
	loc := span.File
	if span.Line > 0 {
		loc = fmt.Sprintf("%s:%d", span.File, span.Line)
		if span.Col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", span.File, span.Line, span.Col)
		}
	}
	rw.location(loc)

	// An inline span carries its own source text. Interactive input has no
	// file behind it, so the span is the only place the line can come from.
	source := span.Text
	if source == "" {
		source = r.readSourceLine(span.File, span.Line)
	}
	if source == "" {
		rw.gutter(" ")
		return
	}

	lineStr := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(lineStr))

	rw.gutter(pad)
	// Tabs render at a fixed width so the caret arithmetic below stays
	// aligned with what was printed.
	rw.sourceLine(lineStr, strings.ReplaceAll(source, "\t", "    "))

	col := span.Col
	if col <= 0 {
		col = 1
	}
	endCol := span.EndCol
	if endCol <= 0 {
		endCol = detectEndCol(source, col)
	}
	if endCol < col {
		endCol = col
	}
	prefix := ""
	if col > 1 && col-1 <= len(source) {
		prefix = source[:col-1]
	}
	rw.underline(pad, displayWidth(prefix), endCol-col+1, span.Label)
	rw.gutter(pad)
}

func (r *Renderer) readSourceLine(file string, line int) string {
	if line <= 0 || file == "" || strings.HasPrefix(file, "<") {
		return ""
	}
	reader := r.SourceReader
	if reader == nil {
		reader = func(name string) ([]byte, error) {
			return os.ReadFile(name) //nolint:gosec // reads user-specified source files for display
		}
	}
	data, err := reader(file)
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; scanner.Scan(); i++ {
		if i == line {
			return scanner.Text()
		}
	}
	return ""
}

// reportWriter lays out one rendered report. It captures the first
// write error so the layout code does not have to check every line.
type reportWriter struct {
	w   *bufio.Writer
	p   palette
	err error
}

func newReportWriter(w io.Writer, p palette) *reportWriter {
	return &reportWriter{w: bufio.NewWriter(w), p: p}
}

func (rw *reportWriter) printf(format string, a ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, a...)
}

func (rw *reportWriter) flush() error {
	if rw.err != nil {
		return rw.err
	}
	return rw.w.Flush()
}

// header writes the "error: message" line.
func (rw *reportWriter) header(sev Severity, msg string) {
	sevColor := rw.p.boldCyan
	switch sev {
	case SeverityError:
		sevColor = rw.p.boldRed
	case SeverityWarning:
		sevColor = rw.p.yellow
	}
	rw.printf("%s%s%s%s:%s %s%s%s\n",
		sevColor, rw.p.bold, sev, rw.p.reset,
		rw.p.reset,
		rw.p.bold, msg, rw.p.reset)
}

// location writes the "  --> file:line:col" pointer.
func (rw *reportWriter) location(loc string) {
	rw.printf("  %s-->%s %s\n", rw.p.boldBlue, rw.p.reset, loc)
}

// gutter writes an empty gutter line aligned to a line number of
// pad's width.
func (rw *reportWriter) gutter(pad string) {
	rw.printf(" %s%s |%s\n", rw.p.boldBlue, pad, rw.p.reset)
}

// sourceLine writes the quoted source line with its line number.
func (rw *reportWriter) sourceLine(lineStr, text string) {
	rw.printf(" %s%s |%s  %s\n", rw.p.boldBlue, lineStr, rw.p.reset, text)
}

// underline writes the caret markers under a source line, with an
// optional trailing label.
func (rw *reportWriter) underline(pad string, displayCol, length int, label string) {
	rw.printf(" %s%s |%s  %s%s%s%s", rw.p.boldBlue, pad, rw.p.reset,
		strings.Repeat(" ", displayCol), rw.p.boldRed, strings.Repeat("^", length), rw.p.reset)
	if label != "" {
		rw.printf(" %s%s%s", rw.p.boldRed, label, rw.p.reset)
	}
	rw.printf("\n")
}

// note writes one "= note:" trailer.
func (rw *reportWriter) note(text string) {
	rw.printf("   %s=%s note: %s\n", rw.p.boldCyan, rw.p.reset, text)
}

// detectEndCol scans from col to find the end of the current token.
func detectEndCol(source string, col int) int {
	if col <= 0 || col > len(source) {
		return col
	}
	end := col - 1 // 0-based
	for end < len(source) {
		ch, size := utf8.DecodeRuneInString(source[end:])
		if ch == ' ' || ch == '\t' || ch == '(' || ch == ')' || ch == '[' || ch == ']' ||
			ch == '\'' || ch == '"' || ch == ';' {
			break
		}
		end += size
	}
	if end == col-1 {
		return col // single character
	}
	return end // convert back to 1-based end column
}

// displayWidth returns the display width of a string, expanding tabs to 4 spaces.
func displayWidth(s string) int {
	w := 0
	for _, ch := range s {
		if ch == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// palette holds the ANSI escape sequences for diagnostic output.
type palette struct {
	bold     string
	yellow   string
	boldRed  string
	boldBlue string
	boldCyan string
	reset    string
}

var ansiPalette = palette{
	bold:     "\033[1m",
	yellow:   "\033[33m",
	boldRed:  "\033[1;31m",
	boldBlue: "\033[1;34m",
	boldCyan: "\033[1;36m",
	reset:    "\033[0m",
}

var noPalette = palette{}

// choosePalette selects the appropriate color palette based on the mode
// and the output file descriptor.
func choosePalette(mode ColorMode, w *os.File) palette {
	switch mode {
	case ColorAlways:
		return ansiPalette
	case ColorNever:
		return noPalette
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return noPalette
		}
		if !isTerminal(w) {
			return noPalette
		}
		return ansiPalette
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// fileFromWriter attempts to extract an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
