package scalar

import "github.com/tavola-io/go-tavola/rel"

// Operator tokens for arithmetic expressions.
const (
	PlusStr  = "+"
	MinusStr = "-"
	MultStr  = "*"
	DivStr   = "/"
	ModStr   = "%"
	PowStr   = "^"
)

// BinaryExpr is a node with a left and a right sub-expression.
type BinaryExpr struct {
	Left  Expr
	Right Expr
}

// Children implements the Expr interface.
func (e *BinaryExpr) Children() []Expr {
	return []Expr{e.Left, e.Right}
}

// Arithmetic is a binary arithmetic expression (+, -, *, /, %, ^).
type Arithmetic struct {
	BinaryExpr
	Op string
}

// NewArithmetic creates an arithmetic expression with the given operator.
func NewArithmetic(left, right Expr, op string) *Arithmetic {
	return &Arithmetic{BinaryExpr{Left: left, Right: right}, op}
}

// NewPlus creates a + expression.
func NewPlus(left, right Expr) *Arithmetic { return NewArithmetic(left, right, PlusStr) }

// NewMinus creates a - expression.
func NewMinus(left, right Expr) *Arithmetic { return NewArithmetic(left, right, MinusStr) }

// NewMult creates a * expression.
func NewMult(left, right Expr) *Arithmetic { return NewArithmetic(left, right, MultStr) }

// NewDiv creates a / expression.
func NewDiv(left, right Expr) *Arithmetic { return NewArithmetic(left, right, DivStr) }

// NewMod creates a % expression.
func NewMod(left, right Expr) *Arithmetic { return NewArithmetic(left, right, ModStr) }

// NewPow creates a ^ expression.
func NewPow(left, right Expr) *Arithmetic { return NewArithmetic(left, right, PowStr) }

// Type implements the Expr interface. Division and exponentiation always
// widen to float64; the remaining operators follow numeric promotion.
func (e *Arithmetic) Type() rel.ElementType {
	if e.Op == DivStr || e.Op == PowStr {
		return rel.Float64
	}
	t, err := rel.PromoteNumeric(e.Left.Type(), e.Right.Type())
	if err != nil {
		return e.Left.Type()
	}
	return t
}

func (e *Arithmetic) String() string {
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}
