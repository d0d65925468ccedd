// Package plan defines the closed set of table-expression node kinds, their
// schema-inference rules and construction-time invariants, columnwise
// fusion, and the structural-identity helpers used by rewrites.
package plan

import "github.com/tavola-io/go-tavola/rel"

// UnaryNode is a node with exactly one child.
type UnaryNode struct {
	Child rel.Node
}

// Schema implements the Node interface.
func (n *UnaryNode) Schema() (rel.RecordType, error) {
	return n.Child.Schema()
}

// Children implements the Node interface.
func (n *UnaryNode) Children() []rel.Node {
	return []rel.Node{n.Child}
}

// BinaryNode is a node with two children.
type BinaryNode struct {
	Left  rel.Node
	Right rel.Node
}

// Children implements the Node interface.
func (n *BinaryNode) Children() []rel.Node {
	return []rel.Node{n.Left, n.Right}
}

func expectChildren(n rel.Node, want int, got []rel.Node) error {
	if len(got) != want {
		return rel.ErrInvalidChildrenNumber.New(n, want, len(got))
	}
	return nil
}
