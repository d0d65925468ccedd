package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Reduction operators.
const (
	SumOp           = "sum"
	MeanOp          = "mean"
	CountOp         = "count"
	MinOp           = "min"
	MaxOp           = "max"
	AnyOp           = "any"
	AllOp           = "all"
	VarianceOp      = "var"
	StdDevOp        = "std"
	CountDistinctOp = "nunique"
)

// Reduction collapses a single-column child to a scalar, removing the row
// dimension of the result.
type Reduction struct {
	UnaryNode
	op string
}

var _ rel.Node = (*Reduction)(nil)

// NewReduction creates a reduction with the given operator over a
// single-column child.
func NewReduction(op string, child rel.Node) (*Reduction, error) {
	schema, err := child.Schema()
	if err != nil {
		return nil, err
	}
	if len(schema) != 1 {
		return nil, rel.ErrNotSingleColumn.New(len(schema))
	}
	return &Reduction{UnaryNode{Child: child}, op}, nil
}

// NewSum creates a sum reduction.
func NewSum(child rel.Node) (*Reduction, error) { return NewReduction(SumOp, child) }

// NewMean creates a mean reduction.
func NewMean(child rel.Node) (*Reduction, error) { return NewReduction(MeanOp, child) }

// NewCount creates a count reduction.
func NewCount(child rel.Node) (*Reduction, error) { return NewReduction(CountOp, child) }

// NewMin creates a min reduction.
func NewMin(child rel.Node) (*Reduction, error) { return NewReduction(MinOp, child) }

// NewMax creates a max reduction.
func NewMax(child rel.Node) (*Reduction, error) { return NewReduction(MaxOp, child) }

// NewAny creates an any (boolean or) reduction.
func NewAny(child rel.Node) (*Reduction, error) { return NewReduction(AnyOp, child) }

// NewAll creates an all (boolean and) reduction.
func NewAll(child rel.Node) (*Reduction, error) { return NewReduction(AllOp, child) }

// NewVariance creates a variance reduction.
func NewVariance(child rel.Node) (*Reduction, error) { return NewReduction(VarianceOp, child) }

// NewStdDev creates a standard-deviation reduction.
func NewStdDev(child rel.Node) (*Reduction, error) { return NewReduction(StdDevOp, child) }

// NewCountDistinct creates a distinct-count reduction.
func NewCountDistinct(child rel.Node) (*Reduction, error) {
	return NewReduction(CountDistinctOp, child)
}

// Op returns the reduction operator.
func (r *Reduction) Op() string { return r.op }

// Schema implements the Node interface. The result is a single field named
// after the reduced column, typed by the operator.
func (r *Reduction) Schema() (rel.RecordType, error) {
	schema, err := r.Child.Schema()
	if err != nil {
		return nil, err
	}

	field := schema[0]
	switch r.op {
	case CountOp, CountDistinctOp:
		field.Type = rel.Int64
	case MeanOp, VarianceOp, StdDevOp:
		field.Type = rel.Float64
	case AnyOp, AllOp:
		field.Type = rel.Boolean
	}
	return rel.RecordType{field}, nil
}

// WithChildren implements the Node interface.
func (r *Reduction) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(r, 1, children); err != nil {
		return nil, err
	}
	return NewReduction(r.op, children[0])
}

func (r *Reduction) String() string {
	return fmt.Sprintf("%s(%s)", r.op, r.Child)
}
