package plan

import "github.com/tavola-io/go-tavola/rel"

// Reduces reports whether the node collapses the row dimension of its input
// to a scalar result. Group-by apply expressions must reduce.
func Reduces(n rel.Node) bool {
	switch n := n.(type) {
	case *Reduction, *Summary:
		return true
	case *Label:
		return Reduces(n.Child)
	case *Apply:
		return n.shape != nil && !n.shape.Tabular
	default:
		return false
	}
}
