package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavola-io/go-tavola/rel"
)

func TestColumnwiseFusion(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: int64}")
	a, err := NewColumn(table, "a")
	require.NoError(err)
	b, err := NewColumn(table, "b")
	require.NoError(err)

	sum, err := Add(a, b)
	require.NoError(err)
	require.True(Equals(table, sum.Source()))
	require.Equal([]string{"a", "b"}, sum.ActiveColumns())

	// Nesting an existing broadcast keeps a single node over one source.
	scaled, err := Mul(sum, 2)
	require.NoError(err)
	require.True(Equals(table, scaled.Source()))
	require.Equal([]string{"a", "b"}, scaled.ActiveColumns())

	schema, err := scaled.Schema()
	require.NoError(err)
	require.Len(schema, 1)
	require.Equal(rel.Int64, schema[0].Type)
}

func TestColumnwiseMismatchedSource(t *testing.T) {
	require := require.New(t)

	t1 := mustTable(t, "t1", "{x: int64}")
	t2 := mustTable(t, "t2", "{y: int64}")
	x, err := NewColumn(t1, "x")
	require.NoError(err)
	y, err := NewColumn(t2, "y")
	require.NoError(err)

	_, err = Add(x, y)
	require.True(rel.ErrMismatchedSource.Is(err))

	for _, combine := range []func(a, b interface{}) (*ColumnWise, error){
		Sub, Mul, Div, Equal, LessThan, GreaterThan,
	} {
		_, err = combine(x, y)
		require.True(rel.ErrMismatchedSource.Is(err))
	}
}

func TestColumnwiseStructurallyEqualSources(t *testing.T) {
	require := require.New(t)

	// Two independently constructed but structurally identical symbols count
	// as one source.
	t1 := mustTable(t, "t", "{x: int64}")
	t2 := mustTable(t, "t", "{x: int64}")
	a, err := NewColumn(t1, "x")
	require.NoError(err)
	b, err := NewColumn(t2, "x")
	require.NoError(err)

	_, err = Add(a, b)
	require.NoError(err)
}

func TestColumnwiseNoSource(t *testing.T) {
	require := require.New(t)

	_, err := Add(1, 2)
	require.True(rel.ErrNoSourceTable.Is(err))
}

func TestColumnwiseOperandTypes(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{name: string, amount: int64}")
	name, err := NewColumn(table, "name")
	require.NoError(err)
	amount, err := NewColumn(table, "amount")
	require.NoError(err)

	_, err = Add(name, 1)
	require.True(rel.ErrInvalidOperandType.Is(err))

	eq, err := Equal(name, "alice")
	require.NoError(err)
	schema, err := eq.Schema()
	require.NoError(err)
	require.Equal(rel.Boolean, schema[0].Type)

	gt, err := GreaterThan(amount, 0)
	require.NoError(err)
	_, err = And(gt, eq)
	require.NoError(err)

	_, err = And(amount, gt)
	require.True(rel.ErrInvalidOperandType.Is(err))
}

func TestColumnwiseUnaryFunctions(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{x: float64}")
	x, err := NewColumn(table, "x")
	require.NoError(err)

	for _, fn := range []func(interface{}) (*ColumnWise, error){Sin, Cos, Tan, Exp, Log, Neg} {
		cw, err := fn(x)
		require.NoError(err)
		require.Equal([]string{"x"}, cw.ActiveColumns())
	}
}
