package rel

import "fmt"

// Node is a table-shaped expression. Nodes are immutable once constructed;
// every transformation returns a new node. Schema is a pure function of the
// node's own fields and its children's schemas.
type Node interface {
	fmt.Stringer
	// Schema returns the record type describing one row of this node's
	// result. Kinds that require declared type information return a typed
	// error when it was never supplied.
	Schema() (RecordType, error)
	// Children returns the child expressions of this node.
	Children() []Node
	// WithChildren returns a copy of this node with the children replaced.
	// The number of children must match.
	WithChildren(children ...Node) (Node, error)
}

// ColumnsOf returns the ordered field names of the node's schema.
func ColumnsOf(n Node) ([]string, error) {
	schema, err := n.Schema()
	if err != nil {
		return nil, err
	}
	return schema.Names(), nil
}

// Row is one row of tabular data, used only for type bookkeeping of row-wise
// functions; execution is out of scope for this layer.
type Row []interface{}

// RowFunc is a per-row user function carried by a Map node.
type RowFunc func(Row) (Row, error)

// TableFunc is a whole-table user function carried by an Apply node.
type TableFunc func(interface{}) (interface{}, error)

// Shape is the declared result shape of an Apply node. Tabular shapes carry
// a row record type; non-tabular shapes collapse the row dimension to a
// scalar of the given element type.
type Shape struct {
	Tabular bool
	Row     RecordType
	Element ElementType
}
