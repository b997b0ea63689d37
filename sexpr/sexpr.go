// Copyright © 2025 The gnaw authors

package sexpr

import (
	"strconv"
	"strings"
)

// NodeKind tags the value stored in a Node.
type NodeKind uint

const (
	NInvalid NodeKind = iota
	NSymbol
	NInt
	NFloat
	NString
	NList
	NQuote

	numNodeKinds
)

func (k NodeKind) String() string {
	kindStrings := [numNodeKinds]string{
		NInvalid: "invalid",
		NSymbol:  "symbol",
		NInt:     "int",
		NFloat:   "float",
		NString:  "string",
		NList:    "list",
		NQuote:   "quote",
	}
	if k >= numNodeKinds {
		return "invalid"
	}
	return kindStrings[k]
}

// Node is one parsed form. Atoms store their value in the field
// matching their kind; lists and quotes store children in Cells.
type Node struct {
	Kind NodeKind
	// Str holds the name of a symbol or the decoded contents of a
	// string literal.
	Str   string
	Int   int
	Float float64
	// Cells holds list elements, or the single quoted form.
	Cells []*Node
}

// Sym returns a symbol node.
func Sym(name string) *Node { return &Node{Kind: NSymbol, Str: name} }

// Int returns an integer node.
func Int(x int) *Node { return &Node{Kind: NInt, Int: x} }

// Float returns a float node.
func Float(f float64) *Node { return &Node{Kind: NFloat, Float: f} }

// Str returns a string node.
func Str(s string) *Node { return &Node{Kind: NString, Str: s} }

// List returns a list node with the given elements.
func List(cells ...*Node) *Node { return &Node{Kind: NList, Cells: cells} }

// Quote returns a quoted form.
func Quote(n *Node) *Node { return &Node{Kind: NQuote, Cells: []*Node{n}} }

// String renders the node back to source form.
func (n *Node) String() string {
	switch n.Kind {
	case NSymbol:
		return n.Str
	case NInt:
		return strconv.Itoa(n.Int)
	case NFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case NString:
		return strconv.Quote(n.Str)
	case NList:
		parts := make([]string, len(n.Cells))
		for i, c := range n.Cells {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	case NQuote:
		return "'" + n.Cells[0].String()
	}
	return "#<invalid>"
}
