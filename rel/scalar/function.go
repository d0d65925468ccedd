package scalar

import "github.com/tavola-io/go-tavola/rel"

// Func is a unary numeric function applied per value (sin, cos, tan, exp,
// log, neg).
type Func struct {
	Name  string
	Child Expr
}

// NewFunc creates a unary function expression.
func NewFunc(name string, child Expr) *Func {
	return &Func{Name: name, Child: child}
}

// Type implements the Expr interface. Negation keeps its operand type; the
// transcendental functions widen to float64.
func (e *Func) Type() rel.ElementType {
	if e.Name == "neg" {
		return e.Child.Type()
	}
	return rel.Float64
}

// Children implements the Expr interface.
func (e *Func) Children() []Expr { return []Expr{e.Child} }

func (e *Func) String() string {
	if e.Name == "neg" {
		return "-" + e.Child.String()
	}
	return e.Name + "(" + e.Child.String() + ")"
}
