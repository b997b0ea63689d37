// Copyright © 2025 The gnaw authors

package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/luthersystems/gnaw/sexpr"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// RunRepl reads s-expressions interactively, printing each parsed
// form or an annotated report of the failure. Lines that end in the
// middle of a committed form continue on the next prompt.
func RunRepl(prompt string, opts ...Option) {
	cont := strings.Repeat(" ", len(prompt))

	cfg := newConfig(opts...)
	stderr := io.Writer(os.Stderr)
	if cfg.stderr != nil {
		stderr = cfg.stderr
	}

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)

	completer := newSymbolCompleter()
	rlCfg := &readline.Config{
		Stdout:            stderr,
		Stderr:            stderr,
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
		AutoComplete:      completer,
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	var pending []byte
	for {
		if len(pending) == 0 {
			rl.SetPrompt(prompt)
		} else {
			rl.SetPrompt(cont)
		}
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			pending = nil
			continue
		}
		if err != nil {
			break
		}
		if len(pending) == 0 && len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		pending = append(pending, line...)
		pending = append(pending, '\n')
		nodes, perr := sexpr.Parse(string(pending))
		if perr != nil {
			if needsMore(perr) {
				continue
			}
			pending = nil
			renderError(stderr, perr)
			continue
		}
		pending = nil
		completer.observe(nodes)
		for _, node := range nodes {
			fmt.Fprintln(stderr, node) //nolint:errcheck // best-effort REPL output
		}
	}
}

// needsMore reports whether the failure sits at the end of the input,
// meaning another line could still complete the form.
func needsMore(err error) bool {
	perr := &sexpr.Error{}
	if !errors.As(err, &perr) {
		return false
	}
	if !perr.Fatal || len(perr.Frames.Errors) == 0 {
		return false
	}
	return perr.Frames.Errors[0].Input == ""
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gnaw_history")
}

// ensureHistoryFilePermissions keeps readline history private to the
// user, creating the file when missing.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600)
	if err != nil {
		return
	}
	f.Close() //nolint:errcheck // best-effort cleanup
	_ = os.Chmod(path, 0600)
}
