// Copyright © 2025 The gnaw authors

package sexpr

// Walk calls fn for every node in the tree, depth-first.
// parent is nil for top-level forms.
func Walk(nodes []*Node, fn func(node *Node, parent *Node, depth int)) {
	for _, node := range nodes {
		walkNode(node, nil, 0, fn)
	}
}

func walkNode(node *Node, parent *Node, depth int, fn func(*Node, *Node, int)) {
	if node == nil {
		return
	}
	fn(node, parent, depth)
	for _, child := range node.Cells {
		walkNode(child, node, depth+1, fn)
	}
}

// WalkLists calls fn for every unquoted list (potential function call
// or special form) in the tree.
func WalkLists(nodes []*Node, fn func(list *Node, depth int)) {
	Walk(nodes, func(node *Node, parent *Node, depth int) {
		if node.Kind == NList && (parent == nil || parent.Kind != NQuote) {
			fn(node, depth)
		}
	})
}

// HeadSymbol returns the symbol name at the head of a list, or "".
func HeadSymbol(list *Node) string {
	if list.Kind != NList || len(list.Cells) == 0 {
		return ""
	}
	head := list.Cells[0]
	if head.Kind == NSymbol {
		return head.Str
	}
	return ""
}

// ArgCount returns the number of arguments in a list (excluding the head).
func ArgCount(list *Node) int {
	if len(list.Cells) <= 1 {
		return 0
	}
	return len(list.Cells) - 1
}
