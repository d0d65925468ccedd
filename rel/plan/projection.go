package plan

import (
	"fmt"
	"strings"

	"github.com/tavola-io/go-tavola/internal/similartext"
	"github.com/tavola-io/go-tavola/rel"
)

// Projection restricts and reorders its child to a list of column names.
type Projection struct {
	UnaryNode
	columns []string
}

var _ rel.Node = (*Projection)(nil)

// NewProjection creates a projection over the given column names. Every name
// must be present in the child's schema and appear at most once.
func NewProjection(child rel.Node, columns []string) (*Projection, error) {
	schema, err := child.Schema()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		if !schema.Contains(name) {
			return nil, rel.ErrColumnNotFound.New(name, schema, similartext.Find(schema.Names(), name))
		}
		if _, dup := seen[name]; dup {
			return nil, rel.ErrDuplicateColumn.New(name)
		}
		seen[name] = struct{}{}
	}

	return &Projection{UnaryNode{Child: child}, columns}, nil
}

// Columns returns the projected column names in output order.
func (p *Projection) Columns() []string { return p.columns }

// Schema implements the Node interface.
func (p *Projection) Schema() (rel.RecordType, error) {
	schema, err := p.Child.Schema()
	if err != nil {
		return nil, err
	}
	return schema.Restrict(p.columns)
}

// WithChildren implements the Node interface.
func (p *Projection) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(p, 1, children); err != nil {
		return nil, err
	}
	return NewProjection(children[0], p.columns)
}

func (p *Projection) String() string {
	return fmt.Sprintf("%s[[%s]]", p.Child, strings.Join(p.columns, ", "))
}
