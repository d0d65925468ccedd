package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Label renames the single column produced by its child.
type Label struct {
	UnaryNode
	label string
}

var _ rel.Node = (*Label)(nil)

// NewLabel creates a label over a single-column child.
func NewLabel(child rel.Node, label string) (*Label, error) {
	schema, err := child.Schema()
	if err != nil {
		return nil, err
	}
	if len(schema) != 1 {
		return nil, rel.ErrNotSingleColumn.New(len(schema))
	}
	return &Label{UnaryNode{Child: child}, label}, nil
}

// Name returns the label.
func (l *Label) Name() string { return l.label }

// Schema implements the Node interface.
func (l *Label) Schema() (rel.RecordType, error) {
	schema, err := l.Child.Schema()
	if err != nil {
		return nil, err
	}
	return rel.RecordType{{Name: l.label, Type: schema[0].Type}}, nil
}

// WithChildren implements the Node interface.
func (l *Label) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(l, 1, children); err != nil {
		return nil, err
	}
	return NewLabel(children[0], l.label)
}

func (l *Label) String() string {
	return fmt.Sprintf("Label(%s, %s)", l.Child, l.label)
}
