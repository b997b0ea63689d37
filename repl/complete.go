// Copyright © 2025 The gnaw authors

package repl

import (
	"sort"
	"strings"

	"github.com/luthersystems/gnaw/sexpr"
)

// symbolCompleter implements readline.AutoCompleter by enumerating symbols
// seen in forms the session already parsed.
type symbolCompleter struct {
	symbols map[string]bool
}

func newSymbolCompleter() *symbolCompleter {
	return &symbolCompleter{symbols: make(map[string]bool)}
}

// observe records every symbol appearing in nodes, at any depth, as a
// completion candidate for later lines.
func (c *symbolCompleter) observe(nodes []*sexpr.Node) {
	sexpr.Walk(nodes, func(node *sexpr.Node, _ *sexpr.Node, _ int) {
		if node.Kind == sexpr.NSymbol {
			c.symbols[node.Str] = true
		}
	})
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace,
	// open paren, or quote).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '(' || ch == '\'' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectSymbols(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, sym := range candidates {
		suffix := sym[len(prefix):]
		result = append(result, []rune(suffix))
	}
	return result, len(prefix)
}

func (c *symbolCompleter) collectSymbols(prefix string) []string {
	var result []string
	for name := range c.symbols {
		if strings.HasPrefix(name, prefix) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
