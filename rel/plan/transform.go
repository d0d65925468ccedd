package plan

import "github.com/tavola-io/go-tavola/rel"

// Inspect traverses the tree in prefix order, calling f on every node. If f
// returns false the children of the current node are skipped.
func Inspect(n rel.Node, f func(rel.Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(child, f)
	}
}

// Substitute returns a copy of the tree in which every subtree structurally
// equal to from is replaced by to. Nodes are never mutated; untouched
// subtrees are shared with the input.
func Substitute(n, from, to rel.Node) (rel.Node, error) {
	if Equals(n, from) {
		return to, nil
	}

	children := n.Children()
	if len(children) == 0 {
		return n, nil
	}

	changed := false
	rebuilt := make([]rel.Node, len(children))
	for i, child := range children {
		sub, err := Substitute(child, from, to)
		if err != nil {
			return nil, err
		}
		if sub != child {
			changed = true
		}
		rebuilt[i] = sub
	}
	if !changed {
		return n, nil
	}
	return n.WithChildren(rebuilt...)
}
