package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Distinct removes duplicate rows from its child.
type Distinct struct {
	UnaryNode
}

var _ rel.Node = (*Distinct)(nil)

// NewDistinct creates a distinct filter.
func NewDistinct(child rel.Node) *Distinct {
	return &Distinct{UnaryNode{Child: child}}
}

// WithChildren implements the Node interface.
func (d *Distinct) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(d, 1, children); err != nil {
		return nil, err
	}
	return NewDistinct(children[0]), nil
}

func (d *Distinct) String() string {
	return fmt.Sprintf("Distinct(%s)", d.Child)
}
