package scalar

import "github.com/tavola-io/go-tavola/rel"

// Operator tokens for comparison expressions.
const (
	EqualsStr         = "=="
	NotEqualsStr      = "!="
	LessThanStr       = "<"
	GreaterThanStr    = ">"
	LessOrEqualStr    = "<="
	GreaterOrEqualStr = ">="
)

// Comparison is a binary comparison expression producing a boolean.
type Comparison struct {
	BinaryExpr
	Op string
}

// NewComparison creates a comparison with the given operator.
func NewComparison(left, right Expr, op string) *Comparison {
	return &Comparison{BinaryExpr{Left: left, Right: right}, op}
}

// NewEquals creates an == comparison.
func NewEquals(left, right Expr) *Comparison { return NewComparison(left, right, EqualsStr) }

// NewNotEquals creates a != comparison.
func NewNotEquals(left, right Expr) *Comparison { return NewComparison(left, right, NotEqualsStr) }

// NewLessThan creates a < comparison.
func NewLessThan(left, right Expr) *Comparison { return NewComparison(left, right, LessThanStr) }

// NewGreaterThan creates a > comparison.
func NewGreaterThan(left, right Expr) *Comparison { return NewComparison(left, right, GreaterThanStr) }

// NewLessOrEqual creates a <= comparison.
func NewLessOrEqual(left, right Expr) *Comparison { return NewComparison(left, right, LessOrEqualStr) }

// NewGreaterOrEqual creates a >= comparison.
func NewGreaterOrEqual(left, right Expr) *Comparison {
	return NewComparison(left, right, GreaterOrEqualStr)
}

// Type implements the Expr interface.
func (*Comparison) Type() rel.ElementType { return rel.Boolean }

func (e *Comparison) String() string {
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}
