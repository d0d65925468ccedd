package plan

import (
	"fmt"
	"strings"

	"github.com/tavola-io/go-tavola/internal/similartext"
	"github.com/tavola-io/go-tavola/rel"
	"github.com/tavola-io/go-tavola/rel/scalar"
)

// ColumnWise is a scalar expression over one table's columns, evaluated per
// row of that table. The inner expression references columns through
// placeholder symbols named after them.
type ColumnWise struct {
	source rel.Node
	expr   scalar.Expr
}

var _ rel.Node = (*ColumnWise)(nil)

// NewColumnWise wraps a scalar expression over the given source table. Every
// column placeholder in the expression must name a column of the source.
func NewColumnWise(source rel.Node, expr scalar.Expr) (*ColumnWise, error) {
	schema, err := source.Schema()
	if err != nil {
		return nil, err
	}
	for _, name := range scalar.Columns(expr) {
		if !schema.Contains(name) {
			return nil, rel.ErrColumnNotFound.New(name, schema, similartext.Find(schema.Names(), name))
		}
	}
	return &ColumnWise{source: source, expr: expr}, nil
}

// Source returns the single table the expression is broadcast over.
func (c *ColumnWise) Source() rel.Node { return c.source }

// Expr returns the inner scalar expression.
func (c *ColumnWise) Expr() scalar.Expr { return c.expr }

// ActiveColumns returns every column placeholder referenced anywhere in the
// inner expression, sorted and de-duplicated.
func (c *ColumnWise) ActiveColumns() []string {
	return scalar.Columns(c.expr)
}

// Schema implements the Node interface. The result is the inner expression's
// type wrapped as a single-field record named after the expression.
func (c *ColumnWise) Schema() (rel.RecordType, error) {
	return rel.RecordType{{Name: c.expr.String(), Type: c.expr.Type()}}, nil
}

// Children implements the Node interface.
func (c *ColumnWise) Children() []rel.Node {
	return []rel.Node{c.source}
}

// WithChildren implements the Node interface.
func (c *ColumnWise) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(c, 1, children); err != nil {
		return nil, err
	}
	return NewColumnWise(children[0], c.expr)
}

func (c *ColumnWise) String() string {
	return fmt.Sprintf("Broadcast(%s, %s)", c.source, c.expr)
}

// fuse classifies columnwise inputs into their scalar forms and resolves the
// single source table they derive from. Inputs may be existing ColumnWise
// nodes, bare Columns, scalar expressions, or plain Go literals.
func fuse(inputs []interface{}) ([]scalar.Expr, rel.Node, error) {
	exprs := make([]scalar.Expr, 0, len(inputs))
	var sources []rel.Node

	addSource := func(n rel.Node) {
		for _, s := range sources {
			if Equals(s, n) {
				return
			}
		}
		sources = append(sources, n)
	}

	for _, input := range inputs {
		switch in := input.(type) {
		case *ColumnWise:
			exprs = append(exprs, in.Expr())
			addSource(in.Source())
		case *Column:
			typ, err := in.ElementType()
			if err != nil {
				return nil, nil, err
			}
			exprs = append(exprs, scalar.NewSymbol(in.Name(), typ))
			addSource(in.Child)
		case scalar.Expr:
			exprs = append(exprs, in)
		default:
			lit, err := scalar.Infer(input)
			if err != nil {
				return nil, nil, err
			}
			exprs = append(exprs, lit)
		}
	}

	if len(sources) > 1 {
		names := make([]string, len(sources))
		for i, s := range sources {
			names[i] = s.String()
		}
		return nil, nil, rel.ErrMismatchedSource.New(strings.Join(names, ", "))
	}
	if len(sources) == 0 {
		return nil, nil, rel.ErrNoSourceTable.New()
	}

	return exprs, sources[0], nil
}

func requireNumeric(exprs ...scalar.Expr) error {
	for _, e := range exprs {
		if !e.Type().Numeric() {
			return rel.ErrInvalidOperandType.New(e.Type())
		}
	}
	return nil
}

func requireBoolean(exprs ...scalar.Expr) error {
	for _, e := range exprs {
		if e.Type() != rel.Boolean {
			return rel.ErrInvalidOperandType.New(e.Type())
		}
	}
	return nil
}

// asBinaryExpr adapts a constructor returning a concrete expression type to
// the generic combine signature used by binary.
func asBinaryExpr[T scalar.Expr](f func(l, r scalar.Expr) T) func(l, r scalar.Expr) scalar.Expr {
	return func(l, r scalar.Expr) scalar.Expr { return f(l, r) }
}

func binary(a, b interface{}, numeric bool, combine func(l, r scalar.Expr) scalar.Expr) (*ColumnWise, error) {
	exprs, source, err := fuse([]interface{}{a, b})
	if err != nil {
		return nil, err
	}
	if numeric {
		if err := requireNumeric(exprs...); err != nil {
			return nil, err
		}
	}
	return NewColumnWise(source, combine(exprs[0], exprs[1]))
}

func unary(a interface{}, combine func(scalar.Expr) scalar.Expr) (*ColumnWise, error) {
	exprs, source, err := fuse([]interface{}{a})
	if err != nil {
		return nil, err
	}
	if err := requireNumeric(exprs...); err != nil {
		return nil, err
	}
	return NewColumnWise(source, combine(exprs[0]))
}

// Add combines two column-like inputs with +.
func Add(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, true, asBinaryExpr(scalar.NewPlus))
}

// Sub combines two column-like inputs with -.
func Sub(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, true, asBinaryExpr(scalar.NewMinus))
}

// Mul combines two column-like inputs with *.
func Mul(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, true, asBinaryExpr(scalar.NewMult))
}

// Div combines two column-like inputs with /.
func Div(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, true, asBinaryExpr(scalar.NewDiv))
}

// Mod combines two column-like inputs with %.
func Mod(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, true, asBinaryExpr(scalar.NewMod))
}

// Pow combines two column-like inputs with ^.
func Pow(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, true, asBinaryExpr(scalar.NewPow))
}

// Equal combines two inputs with ==.
func Equal(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, false, asBinaryExpr(scalar.NewEquals))
}

// NotEqual combines two inputs with !=.
func NotEqual(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, false, asBinaryExpr(scalar.NewNotEquals))
}

// LessThan combines two inputs with <.
func LessThan(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, false, asBinaryExpr(scalar.NewLessThan))
}

// GreaterThan combines two inputs with >.
func GreaterThan(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, false, asBinaryExpr(scalar.NewGreaterThan))
}

// LessOrEqual combines two inputs with <=.
func LessOrEqual(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, false, asBinaryExpr(scalar.NewLessOrEqual))
}

// GreaterOrEqual combines two inputs with >=.
func GreaterOrEqual(a, b interface{}) (*ColumnWise, error) {
	return binary(a, b, false, asBinaryExpr(scalar.NewGreaterOrEqual))
}

// And combines two boolean inputs with a conjunction.
func And(a, b interface{}) (*ColumnWise, error) {
	exprs, source, err := fuse([]interface{}{a, b})
	if err != nil {
		return nil, err
	}
	if err := requireBoolean(exprs...); err != nil {
		return nil, err
	}
	return NewColumnWise(source, scalar.NewAnd(exprs[0], exprs[1]))
}

// Or combines two boolean inputs with a disjunction.
func Or(a, b interface{}) (*ColumnWise, error) {
	exprs, source, err := fuse([]interface{}{a, b})
	if err != nil {
		return nil, err
	}
	if err := requireBoolean(exprs...); err != nil {
		return nil, err
	}
	return NewColumnWise(source, scalar.NewOr(exprs[0], exprs[1]))
}

// Sin applies sin per row.
func Sin(a interface{}) (*ColumnWise, error) {
	return unary(a, func(e scalar.Expr) scalar.Expr { return scalar.NewFunc("sin", e) })
}

// Cos applies cos per row.
func Cos(a interface{}) (*ColumnWise, error) {
	return unary(a, func(e scalar.Expr) scalar.Expr { return scalar.NewFunc("cos", e) })
}

// Tan applies tan per row.
func Tan(a interface{}) (*ColumnWise, error) {
	return unary(a, func(e scalar.Expr) scalar.Expr { return scalar.NewFunc("tan", e) })
}

// Exp applies the exponential per row.
func Exp(a interface{}) (*ColumnWise, error) {
	return unary(a, func(e scalar.Expr) scalar.Expr { return scalar.NewFunc("exp", e) })
}

// Log applies the natural logarithm per row.
func Log(a interface{}) (*ColumnWise, error) {
	return unary(a, func(e scalar.Expr) scalar.Expr { return scalar.NewFunc("log", e) })
}

// Neg negates per row.
func Neg(a interface{}) (*ColumnWise, error) {
	return unary(a, func(e scalar.Expr) scalar.Expr { return scalar.NewFunc("neg", e) })
}
