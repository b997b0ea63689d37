// Copyright © 2025 The gnaw authors

package repl

import (
	"testing"

	"github.com/luthersystems/gnaw/sexpr"
)

func TestSymbolCompleter(t *testing.T) {
	c := newSymbolCompleter()
	nodes, err := sexpr.Parse("(defun greet (name) (concat greeting name)) 'decode")
	if err != nil {
		t.Fatal(err)
	}
	c.observe(nodes)

	// "de" should match decode and defun.
	candidates, offset := c.Do([]rune("(de"), 3)
	if offset != 2 {
		t.Errorf("offset = %d, want 2", offset)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 completions for 'de', got %d", len(candidates))
	}
	if got := string(candidates[0]); got != "code" {
		t.Errorf("candidates[0] = %q, want %q", got, "code")
	}
	if got := string(candidates[1]); got != "fun" {
		t.Errorf("candidates[1] = %q, want %q", got, "fun")
	}

	// A quote starts a fresh word.
	candidates, offset = c.Do([]rune("'gre"), 4)
	if offset != 3 {
		t.Errorf("offset = %d, want 3", offset)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 completions for 'gre', got %d", len(candidates))
	}
	if got := string(candidates[0]); got != "et" {
		t.Errorf("candidates[0] = %q, want %q", got, "et")
	}

	// "zzz" should have no completions.
	candidates, _ = c.Do([]rune("(zzz"), 4)
	if len(candidates) != 0 {
		t.Errorf("expected no completions for 'zzz', got %d", len(candidates))
	}

	// The cursor resting on a boundary yields nothing.
	candidates, offset = c.Do([]rune("("), 1)
	if candidates != nil || offset != 0 {
		t.Errorf("expected no completions after '(', got %d at offset %d", len(candidates), offset)
	}
}
