package scalar

import "github.com/tavola-io/go-tavola/rel"

// Symbol is a placeholder for one column of the source table, named after
// the column it stands for.
type Symbol struct {
	name string
	typ  rel.ElementType
}

// NewSymbol creates a column placeholder.
func NewSymbol(name string, typ rel.ElementType) *Symbol {
	return &Symbol{name: name, typ: typ}
}

// Name returns the column name the placeholder stands for.
func (s *Symbol) Name() string { return s.name }

// Type implements the Expr interface.
func (s *Symbol) Type() rel.ElementType { return s.typ }

// Children implements the Expr interface.
func (*Symbol) Children() []Expr { return nil }

func (s *Symbol) String() string { return s.name }
