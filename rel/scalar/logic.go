package scalar

import "github.com/tavola-io/go-tavola/rel"

// Operator tokens for boolean connectives.
const (
	AndStr = "and"
	OrStr  = "or"
)

// Logic is a binary boolean connective.
type Logic struct {
	BinaryExpr
	Op string
}

// NewAnd creates a boolean conjunction.
func NewAnd(left, right Expr) *Logic {
	return &Logic{BinaryExpr{Left: left, Right: right}, AndStr}
}

// NewOr creates a boolean disjunction.
func NewOr(left, right Expr) *Logic {
	return &Logic{BinaryExpr{Left: left, Right: right}, OrStr}
}

// Type implements the Expr interface.
func (*Logic) Type() rel.ElementType { return rel.Boolean }

func (e *Logic) String() string {
	return "(" + e.Left.String() + " " + e.Op + " " + e.Right.String() + ")"
}

// Not negates a boolean expression.
type Not struct {
	Child Expr
}

// NewNot creates a boolean negation.
func NewNot(child Expr) *Not { return &Not{Child: child} }

// Type implements the Expr interface.
func (*Not) Type() rel.ElementType { return rel.Boolean }

// Children implements the Expr interface.
func (e *Not) Children() []Expr { return []Expr{e.Child} }

func (e *Not) String() string { return "not " + e.Child.String() }
