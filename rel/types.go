package rel

import "fmt"

// ElementType is the type of a single field in a record. The set of element
// types is closed; values are comparable with ==.
type ElementType struct {
	name    string
	numeric bool
}

// Scalar element types understood by the expression layer.
var (
	Int64    = ElementType{name: "int64", numeric: true}
	Float64  = ElementType{name: "float64", numeric: true}
	Boolean  = ElementType{name: "bool"}
	Text     = ElementType{name: "string"}
	Datetime = ElementType{name: "datetime"}
)

// Name returns the canonical name of the type.
func (t ElementType) Name() string { return t.name }

// Numeric returns whether the type supports arithmetic.
func (t ElementType) Numeric() bool { return t.numeric }

func (t ElementType) String() string { return t.name }

var elementTypeNames = map[string]ElementType{
	"int":      Int64,
	"int32":    Int64,
	"int64":    Int64,
	"real":     Float64,
	"float":    Float64,
	"float64":  Float64,
	"bool":     Boolean,
	"boolean":  Boolean,
	"string":   Text,
	"text":     Text,
	"datetime": Datetime,
	"time":     Datetime,
}

// ParseElementType resolves a type name used in record literals.
func ParseElementType(name string) (ElementType, error) {
	t, ok := elementTypeNames[name]
	if !ok {
		return ElementType{}, ErrTypeNotSupported.New(name)
	}
	return t, nil
}

// PromoteNumeric returns the element type resulting from arithmetic between
// the two given types. Both must be numeric.
func PromoteNumeric(a, b ElementType) (ElementType, error) {
	if !a.Numeric() || !b.Numeric() {
		return ElementType{}, ErrInvalidOperandType.New(fmt.Sprintf("%s, %s", a, b))
	}
	if a == Float64 || b == Float64 {
		return Float64, nil
	}
	return Int64, nil
}
