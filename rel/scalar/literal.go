package scalar

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/tavola-io/go-tavola/rel"
)

// Literal is a constant scalar value.
type Literal struct {
	value interface{}
	typ   rel.ElementType
}

// NewLiteral creates a literal of an explicit element type.
func NewLiteral(value interface{}, typ rel.ElementType) *Literal {
	return &Literal{value: value, typ: typ}
}

// Infer creates a literal from a plain Go value, canonicalizing it to the
// element type's representation.
func Infer(value interface{}) (*Literal, error) {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return NewLiteral(cast.ToInt64(value), rel.Int64), nil
	case float32, float64:
		return NewLiteral(cast.ToFloat64(value), rel.Float64), nil
	case bool:
		return NewLiteral(cast.ToBool(value), rel.Boolean), nil
	case string:
		return NewLiteral(cast.ToString(value), rel.Text), nil
	case time.Time:
		return NewLiteral(value, rel.Datetime), nil
	default:
		return nil, rel.ErrInvalidOperandType.New(fmt.Sprintf("%T", value))
	}
}

// Value returns the constant value.
func (l *Literal) Value() interface{} { return l.value }

// Type implements the Expr interface.
func (l *Literal) Type() rel.ElementType { return l.typ }

// Children implements the Expr interface.
func (*Literal) Children() []Expr { return nil }

func (l *Literal) String() string {
	if l.typ == rel.Text {
		return fmt.Sprintf("%q", l.value)
	}
	return fmt.Sprintf("%v", l.value)
}
