package plan

import (
	"fmt"
	"strings"

	"github.com/tavola-io/go-tavola/internal/similartext"
	"github.com/tavola-io/go-tavola/rel"
)

// Sort orders the rows of its child by a list of key columns or by a key
// expression.
type Sort struct {
	Child     rel.Node
	columns   []string
	key       rel.Node
	ascending bool
}

var _ rel.Node = (*Sort)(nil)

// NewSort creates a sort over key columns. An empty column list defaults to
// the child's first column.
func NewSort(child rel.Node, columns []string, ascending bool) (*Sort, error) {
	schema, err := child.Schema()
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		if len(schema) == 0 {
			return nil, rel.ErrNotSingleColumn.New(0)
		}
		columns = []string{schema[0].Name}
	}
	for _, name := range columns {
		if !schema.Contains(name) {
			return nil, rel.ErrColumnNotFound.New(name, schema, similartext.Find(schema.Names(), name))
		}
	}
	return &Sort{Child: child, columns: columns, ascending: ascending}, nil
}

// NewSortBy creates a sort keyed by an expression over the child's columns.
func NewSortBy(child, key rel.Node, ascending bool) (*Sort, error) {
	schema, err := key.Schema()
	if err != nil {
		return nil, err
	}
	if len(schema) != 1 {
		return nil, rel.ErrNotSingleColumn.New(len(schema))
	}
	return &Sort{Child: child, key: key, ascending: ascending}, nil
}

// KeyColumns returns the key column names, or nil for an expression key.
func (s *Sort) KeyColumns() []string { return s.columns }

// Key returns the key expression, or nil for a column-list key.
func (s *Sort) Key() rel.Node { return s.key }

// Ascending reports the sort direction.
func (s *Sort) Ascending() bool { return s.ascending }

// Schema implements the Node interface.
func (s *Sort) Schema() (rel.RecordType, error) {
	return s.Child.Schema()
}

// Children implements the Node interface.
func (s *Sort) Children() []rel.Node {
	if s.key != nil {
		return []rel.Node{s.Child, s.key}
	}
	return []rel.Node{s.Child}
}

// WithChildren implements the Node interface.
func (s *Sort) WithChildren(children ...rel.Node) (rel.Node, error) {
	if s.key != nil {
		if err := expectChildren(s, 2, children); err != nil {
			return nil, err
		}
		return NewSortBy(children[0], children[1], s.ascending)
	}
	if err := expectChildren(s, 1, children); err != nil {
		return nil, err
	}
	return NewSort(children[0], s.columns, s.ascending)
}

func (s *Sort) String() string {
	dir := "desc"
	if s.ascending {
		dir = "asc"
	}
	if s.key != nil {
		return fmt.Sprintf("Sort(%s, %s, %s)", s.Child, s.key, dir)
	}
	return fmt.Sprintf("Sort(%s, [%s], %s)", s.Child, strings.Join(s.columns, ", "), dir)
}
