package analyzer

import (
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/tavola-io/go-tavola/rel"
	"github.com/tavola-io/go-tavola/rel/plan"
)

// LeanProjection rewrites the tree so every table leaf carries only the
// columns consumed downstream, requesting all of the root's own columns.
func (a *Analyzer) LeanProjection(ctx *rel.Context, n rel.Node) (rel.Node, error) {
	columns, err := rel.ColumnsOf(n)
	if err != nil {
		return nil, err
	}
	return a.LeanProjectionFields(ctx, n, columns)
}

// LeanProjectionFields is LeanProjection with an explicit set of fields the
// root consumer needs. Requesting a field the root does not produce is a
// caller error.
func (a *Analyzer) LeanProjectionFields(ctx *rel.Context, n rel.Node, fields []string) (rel.Node, error) {
	span, _ := ctx.Span("analyzer.lean_projection", opentracing.Tags{
		"fields": len(fields),
	})
	defer span.Finish()

	schema, err := n.Schema()
	if err != nil {
		return nil, err
	}
	for _, name := range fields {
		if !schema.Contains(name) {
			return nil, rel.ErrFieldNotAvailable.New(name, n)
		}
	}

	a.Log("lean projection of %s for fields %v", n, fields)
	node, _, err := a.lean(n, newFieldSet(fields...))
	return node, err
}

// lean is the per-kind rewrite: given the fields needed above the node, it
// returns the rewritten node and the source-table fields this subtree needs.
// Dispatch is an exhaustive switch over the closed node-kind set; a kind
// without a rule is an internal error, never a silent pass-through.
func (a *Analyzer) lean(n rel.Node, fields fieldSet) (rel.Node, fieldSet, error) {
	switch n := n.(type) {
	case *plan.Symbol:
		return a.leanSymbol(n, fields)
	case *plan.Projection:
		return a.leanProjection(n, fields)
	case *plan.Column:
		return a.leanColumn(n, fields)
	case *plan.ColumnWise:
		return a.leanColumnWise(n, fields)
	case *plan.Selection:
		return a.leanSelection(n, fields)
	case *plan.Reduction:
		return a.leanReduction(n)
	case *plan.Summary:
		return a.leanSummary(n, fields)
	case *plan.By:
		return a.leanBy(n, fields)
	case *plan.Sort:
		return a.leanSort(n, fields)
	case *plan.Distinct:
		return a.leanOpaque(n, n.Child)
	case *plan.Head:
		return a.leanHead(n, fields)
	case *plan.Label:
		return a.leanLabel(n)
	case *plan.ReLabel:
		return a.leanReLabel(n, fields)
	case *plan.Map:
		return a.leanOpaque(n, n.Child)
	case *plan.Apply:
		return a.leanOpaque(n, n.Child)
	case *plan.Join:
		return a.leanJoin(n, fields)
	default:
		return nil, nil, errNoRule.New(n)
	}
}

// leanSymbol wraps the table leaf in a projection over exactly the requested
// fields, in canonical order.
func (a *Analyzer) leanSymbol(n *plan.Symbol, fields fieldSet) (rel.Node, fieldSet, error) {
	p, err := plan.NewProjection(n, fields.sorted())
	if err != nil {
		return nil, nil, err
	}
	a.Log("restricted symbol %s to %v", n.Name(), fields.sorted())
	return p, fields, nil
}

// leanProjection narrows the projection to the requested fields, keeping the
// projection's own output order for them. A request for a field the
// projection does not select is a caller error.
func (a *Analyzer) leanProjection(n *plan.Projection, fields fieldSet) (rel.Node, fieldSet, error) {
	for _, name := range fields.sorted() {
		if !contains(n.Columns(), name) {
			return nil, nil, rel.ErrFieldNotAvailable.New(name, n)
		}
	}

	child, _, err := a.lean(n.Child, fields)
	if err != nil {
		return nil, nil, err
	}

	ordered := make([]string, 0, len(fields))
	for _, name := range n.Columns() {
		if fields.contains(name) {
			ordered = append(ordered, name)
		}
	}

	p, err := plan.NewProjection(child, ordered)
	if err != nil {
		return nil, nil, err
	}
	return p, fields, nil
}

// leanColumn adds the accessed field to the request before descending.
func (a *Analyzer) leanColumn(n *plan.Column, fields fieldSet) (rel.Node, fieldSet, error) {
	union := fields.union(newFieldSet(n.Name()))
	child, _, err := a.lean(n.Child, union)
	if err != nil {
		return nil, nil, err
	}
	c, err := plan.NewColumn(child, n.Name())
	if err != nil {
		return nil, nil, err
	}
	return c, union, nil
}

// leanColumnWise unions the broadcast's active columns into the request.
// Requested fields the source does not expose are this node's own synthetic
// outputs and are dropped from the child request.
func (a *Analyzer) leanColumnWise(n *plan.ColumnWise, fields fieldSet) (rel.Node, fieldSet, error) {
	sourceSchema, err := n.Source().Schema()
	if err != nil {
		return nil, nil, err
	}
	union := fields.intersectNames(sourceSchema.Names()).
		union(newFieldSet(n.ActiveColumns()...))

	child, _, err := a.lean(n.Source(), union)
	if err != nil {
		return nil, nil, err
	}
	cw, err := plan.NewColumnWise(child, n.Expr())
	if err != nil {
		return nil, nil, err
	}
	return cw, union, nil
}

// leanSelection discovers the predicate's field needs with an empty request,
// prunes the primary child with the union, and substitutes the pruned child
// into the predicate so both share one source.
func (a *Analyzer) leanSelection(n *plan.Selection, fields fieldSet) (rel.Node, fieldSet, error) {
	_, predFields, err := a.lean(n.Predicate, newFieldSet())
	if err != nil {
		return nil, nil, err
	}

	union := fields.union(predFields)
	child, _, err := a.lean(n.Child, union)
	if err != nil {
		return nil, nil, err
	}

	predicate, err := plan.Substitute(n.Predicate, n.Child, child)
	if err != nil {
		return nil, nil, err
	}
	s, err := plan.NewSelection(child, predicate)
	if err != nil {
		return nil, nil, err
	}
	return s, union, nil
}

// leanReduction ignores the incoming request entirely: a reduction collapses
// whatever columns it touches, and only those matter.
func (a *Analyzer) leanReduction(n *plan.Reduction) (rel.Node, fieldSet, error) {
	child, childFields, err := a.lean(n.Child, newFieldSet())
	if err != nil {
		return nil, nil, err
	}
	r, err := plan.NewReduction(n.Op(), child)
	if err != nil {
		return nil, nil, err
	}
	return r, childFields, nil
}

// leanSummary drops entries whose name was not requested and rebuilds the
// summary from the kept, independently pruned entries.
func (a *Analyzer) leanSummary(n *plan.Summary, fields fieldSet) (rel.Node, fieldSet, error) {
	var kept []plan.SummaryEntry
	discovered := newFieldSet()
	for _, entry := range n.Entries() {
		if !fields.contains(entry.Name) {
			a.Log("dropping unused summary entry %q", entry.Name)
			continue
		}
		value, valueFields, err := a.lean(entry.Value, newFieldSet())
		if err != nil {
			return nil, nil, err
		}
		kept = append(kept, plan.SummaryEntry{Name: entry.Name, Value: value})
		discovered = discovered.union(valueFields)
	}

	s, err := plan.NewSummary(kept)
	if err != nil {
		return nil, nil, err
	}
	return s, discovered, nil
}

// leanBy prunes grouper and apply independently, then re-leans their common
// ancestor down to the union of both sides' needs so they keep sharing one
// pruned source.
func (a *Analyzer) leanBy(n *plan.By, fields fieldSet) (rel.Node, fieldSet, error) {
	grouperCols, err := rel.ColumnsOf(n.Grouper)
	if err != nil {
		return nil, nil, err
	}
	applyCols, err := rel.ColumnsOf(n.Apply)
	if err != nil {
		return nil, nil, err
	}

	grouper, grouperFields, err := a.lean(n.Grouper, fields.intersectNames(grouperCols))
	if err != nil {
		return nil, nil, err
	}
	apply, applyFields, err := a.lean(n.Apply, fields.intersectNames(applyCols))
	if err != nil {
		return nil, nil, err
	}
	union := grouperFields.union(applyFields)

	ancestor, err := plan.CommonSubexpression(grouper, apply)
	if err != nil {
		return nil, nil, err
	}
	ancestorCols, err := rel.ColumnsOf(ancestor)
	if err != nil {
		return nil, nil, err
	}

	if len(ancestorCols) < len(union) {
		return nil, nil, rel.ErrInconsistentPrune.New(len(ancestorCols), len(union))
	}
	if len(ancestorCols) > len(union) {
		pruned, _, err := a.lean(ancestor, union)
		if err != nil {
			return nil, nil, err
		}
		if grouper, err = plan.Substitute(grouper, ancestor, pruned); err != nil {
			return nil, nil, err
		}
		if apply, err = plan.Substitute(apply, ancestor, pruned); err != nil {
			return nil, nil, err
		}
	}

	by, err := plan.NewBy(grouper, apply)
	if err != nil {
		return nil, nil, err
	}
	return by, union, nil
}

// leanSort treats its key like a selection predicate: key columns are
// additive to the request.
func (a *Analyzer) leanSort(n *plan.Sort, fields fieldSet) (rel.Node, fieldSet, error) {
	if key := n.Key(); key != nil {
		_, keyFields, err := a.lean(key, newFieldSet())
		if err != nil {
			return nil, nil, err
		}
		union := fields.union(keyFields)
		child, _, err := a.lean(n.Child, union)
		if err != nil {
			return nil, nil, err
		}
		newKey, err := plan.Substitute(key, n.Child, child)
		if err != nil {
			return nil, nil, err
		}
		s, err := plan.NewSortBy(child, newKey, n.Ascending())
		if err != nil {
			return nil, nil, err
		}
		return s, union, nil
	}

	union := fields.union(newFieldSet(n.KeyColumns()...))
	child, _, err := a.lean(n.Child, union)
	if err != nil {
		return nil, nil, err
	}
	s, err := plan.NewSort(child, n.KeyColumns(), n.Ascending())
	if err != nil {
		return nil, nil, err
	}
	return s, union, nil
}

// leanHead passes the request through unchanged.
func (a *Analyzer) leanHead(n *plan.Head, fields fieldSet) (rel.Node, fieldSet, error) {
	child, childFields, err := a.lean(n.Child, fields)
	if err != nil {
		return nil, nil, err
	}
	h, err := n.WithChildren(child)
	if err != nil {
		return nil, nil, err
	}
	return h, childFields, nil
}

// leanLabel requests the child's own single column; the label itself exists
// only in this node's namespace.
func (a *Analyzer) leanLabel(n *plan.Label) (rel.Node, fieldSet, error) {
	childCols, err := rel.ColumnsOf(n.Child)
	if err != nil {
		return nil, nil, err
	}
	child, childFields, err := a.lean(n.Child, newFieldSet(childCols...))
	if err != nil {
		return nil, nil, err
	}
	l, err := plan.NewLabel(child, n.Name())
	if err != nil {
		return nil, nil, err
	}
	return l, childFields, nil
}

// leanReLabel translates requested names back through the rename before
// descending, and keeps only the mapping entries the pruned child still
// carries.
func (a *Analyzer) leanReLabel(n *plan.ReLabel, fields fieldSet) (rel.Node, fieldSet, error) {
	mapping := n.Mapping()
	inverse := make(map[string]string, len(mapping))
	for old, renamed := range mapping {
		inverse[renamed] = old
	}

	childFields := newFieldSet()
	for name := range fields {
		if old, ok := inverse[name]; ok {
			childFields.add(old)
		} else {
			childFields.add(name)
		}
	}

	child, discovered, err := a.lean(n.Child, childFields)
	if err != nil {
		return nil, nil, err
	}

	childSchema, err := child.Schema()
	if err != nil {
		return nil, nil, err
	}
	surviving := make(map[string]string)
	for old, renamed := range mapping {
		if childSchema.Contains(old) {
			surviving[old] = renamed
		}
	}

	r, err := plan.NewReLabel(child, surviving)
	if err != nil {
		return nil, nil, err
	}
	return r, discovered, nil
}

// leanOpaque handles nodes whose semantics depend on every column of their
// child: Distinct (row identity) and the opaque user functions Map and
// Apply. Nothing below them may be pruned.
func (a *Analyzer) leanOpaque(n rel.Node, child rel.Node) (rel.Node, fieldSet, error) {
	childCols, err := rel.ColumnsOf(child)
	if err != nil {
		return nil, nil, err
	}
	newChild, childFields, err := a.lean(child, newFieldSet(childCols...))
	if err != nil {
		return nil, nil, err
	}
	rebuilt, err := n.WithChildren(newChild)
	if err != nil {
		return nil, nil, err
	}
	return rebuilt, childFields, nil
}

// leanJoin splits the request per side, always keeping each side's key.
func (a *Analyzer) leanJoin(n *plan.Join, fields fieldSet) (rel.Node, fieldSet, error) {
	leftCols, err := rel.ColumnsOf(n.Left)
	if err != nil {
		return nil, nil, err
	}
	rightCols, err := rel.ColumnsOf(n.Right)
	if err != nil {
		return nil, nil, err
	}

	leftReq := fields.intersectNames(leftCols).union(newFieldSet(n.LeftKey()))
	rightReq := fields.intersectNames(rightCols).union(newFieldSet(n.RightKey()))

	left, leftFields, err := a.lean(n.Left, leftReq)
	if err != nil {
		return nil, nil, err
	}
	right, rightFields, err := a.lean(n.Right, rightReq)
	if err != nil {
		return nil, nil, err
	}

	j, err := plan.NewJoin(left, right, n.LeftKey(), n.RightKey())
	if err != nil {
		return nil, nil, err
	}
	return j, leftFields.union(rightFields), nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
