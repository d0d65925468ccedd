package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Map applies a user function to every row. The function is opaque to the
// expression layer; only the declared result record type is tracked.
type Map struct {
	UnaryNode
	fn       rel.RowFunc
	declared rel.RecordType
}

var _ rel.Node = (*Map)(nil)

// NewMap creates a row-wise map. The declared record type may be nil; the
// node is still legally constructible, but querying its schema fails until
// one is supplied.
func NewMap(child rel.Node, fn rel.RowFunc, declared rel.RecordType) *Map {
	return &Map{UnaryNode{Child: child}, fn, declared}
}

// Func returns the row function.
func (m *Map) Func() rel.RowFunc { return m.fn }

// Schema implements the Node interface.
func (m *Map) Schema() (rel.RecordType, error) {
	if m.declared == nil {
		return nil, rel.ErrUndeclaredSchema.New(m)
	}
	return m.declared, nil
}

// WithChildren implements the Node interface.
func (m *Map) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(m, 1, children); err != nil {
		return nil, err
	}
	return NewMap(children[0], m.fn, m.declared), nil
}

func (m *Map) String() string {
	return fmt.Sprintf("Map(%s)", m.Child)
}
