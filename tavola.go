// Package tavola is a symbolic expression layer for tabular computations.
// Callers build an immutable expression tree over table symbols, query each
// node's record-valued schema, and rewrite the tree so no unused column is
// carried through any subtree before handing it to an execution backend.
package tavola

import (
	"github.com/tavola-io/go-tavola/rel"
	"github.com/tavola-io/go-tavola/rel/analyzer"
)

// Optimize applies the lean-projection rewrite to the tree, requesting all
// of the root's own columns. The input tree is never mutated.
func Optimize(ctx *rel.Context, n rel.Node) (rel.Node, error) {
	return analyzer.NewDefault().LeanProjection(ctx, n)
}

// OptimizeFields is Optimize with an explicit set of fields needed by the
// root consumer.
func OptimizeFields(ctx *rel.Context, n rel.Node, fields []string) (rel.Node, error) {
	return analyzer.NewDefault().LeanProjectionFields(ctx, n, fields)
}
