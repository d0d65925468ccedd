package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/internal/similartext"
	"github.com/tavola-io/go-tavola/rel"
)

// Column is a single-column projection. It is the unit the scalar
// combinators operate on.
type Column struct {
	UnaryNode
	name string
}

var _ rel.Node = (*Column)(nil)

// NewColumn creates a single-column projection. The name must be present in
// the child's schema.
func NewColumn(child rel.Node, name string) (*Column, error) {
	schema, err := child.Schema()
	if err != nil {
		return nil, err
	}
	if !schema.Contains(name) {
		return nil, rel.ErrColumnNotFound.New(name, schema, similartext.Find(schema.Names(), name))
	}
	return &Column{UnaryNode{Child: child}, name}, nil
}

// Name returns the accessed column name.
func (c *Column) Name() string { return c.name }

// Schema implements the Node interface.
func (c *Column) Schema() (rel.RecordType, error) {
	schema, err := c.Child.Schema()
	if err != nil {
		return nil, err
	}
	return schema.Restrict([]string{c.name})
}

// ElementType returns the element type of the accessed column.
func (c *Column) ElementType() (rel.ElementType, error) {
	schema, err := c.Child.Schema()
	if err != nil {
		return rel.ElementType{}, err
	}
	return schema.FieldType(c.name)
}

// WithChildren implements the Node interface.
func (c *Column) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(c, 1, children); err != nil {
		return nil, err
	}
	return NewColumn(children[0], c.name)
}

func (c *Column) String() string {
	return fmt.Sprintf("%s[%s]", c.Child, c.name)
}
