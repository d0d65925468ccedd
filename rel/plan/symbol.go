package plan

import "github.com/tavola-io/go-tavola/rel"

// Symbol is a leaf standing for a source table with a declared row type.
type Symbol struct {
	name   string
	schema rel.RecordType
}

var _ rel.Node = (*Symbol)(nil)

// NewSymbol creates a table symbol from a declared record type.
func NewSymbol(name string, schema rel.RecordType) *Symbol {
	return &Symbol{name: name, schema: schema}
}

// NewTable creates a table symbol from a record-literal string, e.g.
//
//	t, err := plan.NewTable("t", "{name: string, amount: int64}")
func NewTable(name, schema string) (*Symbol, error) {
	record, err := rel.ParseRecord(schema)
	if err != nil {
		return nil, err
	}
	return NewSymbol(name, record), nil
}

// Name returns the symbol's table name.
func (s *Symbol) Name() string { return s.name }

// Schema implements the Node interface.
func (s *Symbol) Schema() (rel.RecordType, error) { return s.schema, nil }

// Children implements the Node interface.
func (*Symbol) Children() []rel.Node { return nil }

// WithChildren implements the Node interface.
func (s *Symbol) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(s, 0, children); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Symbol) String() string { return s.name }
