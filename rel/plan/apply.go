package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Apply applies a user function to the whole table. Only the declared result
// shape is tracked; tabular shapes expose a row type, scalar shapes collapse
// the row dimension.
type Apply struct {
	UnaryNode
	fn    rel.TableFunc
	shape *rel.Shape
}

var _ rel.Node = (*Apply)(nil)

// NewApply creates a whole-table function application. The shape may be nil;
// the node is still legally constructible, but querying its schema fails
// until one is supplied.
func NewApply(child rel.Node, fn rel.TableFunc, shape *rel.Shape) *Apply {
	return &Apply{UnaryNode{Child: child}, fn, shape}
}

// Func returns the table function.
func (a *Apply) Func() rel.TableFunc { return a.fn }

// Shape returns the declared result shape, which may be nil.
func (a *Apply) Shape() *rel.Shape { return a.shape }

// Schema implements the Node interface. Only dimension-tagged (tabular)
// shapes have a row type.
func (a *Apply) Schema() (rel.RecordType, error) {
	if a.shape == nil {
		return nil, rel.ErrUndeclaredSchema.New(a)
	}
	if !a.shape.Tabular {
		return nil, rel.ErrNotTabular.New(a)
	}
	return a.shape.Row, nil
}

// WithChildren implements the Node interface.
func (a *Apply) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(a, 1, children); err != nil {
		return nil, err
	}
	return NewApply(children[0], a.fn, a.shape), nil
}

func (a *Apply) String() string {
	return fmt.Sprintf("Apply(%s)", a.Child)
}
