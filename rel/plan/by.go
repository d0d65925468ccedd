package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// By is the split-apply-combine operator: rows of the shared parent are
// grouped by the grouper expression's values, and the apply expression is
// reduced within each group.
type By struct {
	parent  rel.Node
	Grouper rel.Node
	Apply   rel.Node
}

var _ rel.Node = (*By)(nil)

// NewBy creates a group-by. Grouper and apply must derive from one shared
// subexpression, and apply must reduce: a row-producing apply is a
// construction-time error.
func NewBy(grouper, apply rel.Node) (*By, error) {
	if !Reduces(apply) {
		return nil, rel.ErrNotReduction.New(apply)
	}
	parent, err := CommonSubexpression(grouper, apply)
	if err != nil {
		return nil, err
	}
	return &By{parent: parent, Grouper: grouper, Apply: apply}, nil
}

// Parent returns the shared subexpression both sides derive from.
func (b *By) Parent() rel.Node { return b.parent }

// Schema implements the Node interface: the grouper's fields followed by the
// apply's fields, de-duplicated by name, grouper first.
func (b *By) Schema() (rel.RecordType, error) {
	grouper, err := b.Grouper.Schema()
	if err != nil {
		return nil, err
	}
	apply, err := b.Apply.Schema()
	if err != nil {
		return nil, err
	}

	record := make(rel.RecordType, 0, len(grouper)+len(apply))
	record = append(record, grouper...)
	for _, f := range apply {
		if !record.Contains(f.Name) {
			record = append(record, f)
		}
	}
	return record, nil
}

// Children implements the Node interface.
func (b *By) Children() []rel.Node {
	return []rel.Node{b.Grouper, b.Apply}
}

// WithChildren implements the Node interface.
func (b *By) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(b, 2, children); err != nil {
		return nil, err
	}
	return NewBy(children[0], children[1])
}

func (b *By) String() string {
	return fmt.Sprintf("By(%s, %s)", b.Grouper, b.Apply)
}
