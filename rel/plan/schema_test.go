package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavola-io/go-tavola/rel"
)

func mustTable(t *testing.T, name, schema string) *Symbol {
	t.Helper()
	table, err := NewTable(name, schema)
	require.NoError(t, err)
	return table
}

func TestSymbolSchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "accounts", "{name: string, amount: int64}")
	schema, err := table.Schema()
	require.NoError(err)
	require.Equal([]string{"name", "amount"}, schema.Names())

	// Purity: two queries return structurally equal record types.
	again, err := table.Schema()
	require.NoError(err)
	require.True(schema.Equals(again))
}

func TestProjectionSchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: string, c: bool}")

	p, err := NewProjection(table, []string{"c", "a"})
	require.NoError(err)
	schema, err := p.Schema()
	require.NoError(err)
	require.Equal([]string{"c", "a"}, schema.Names())

	_, err = NewProjection(table, []string{"z"})
	require.True(rel.ErrColumnNotFound.Is(err))

	_, err = NewProjection(table, []string{"a", "a"})
	require.True(rel.ErrDuplicateColumn.Is(err))
}

func TestColumnSchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: string}")

	c, err := NewColumn(table, "b")
	require.NoError(err)
	schema, err := c.Schema()
	require.NoError(err)
	require.True(schema.Equals(rel.MustParseRecord("{b: string}")))

	_, err = NewColumn(table, "z")
	require.True(rel.ErrColumnNotFound.Is(err))
}

func TestSelectionRequiresBooleanPredicate(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: int64}")

	col, err := NewColumn(table, "a")
	require.NoError(err)

	pred, err := GreaterThan(col, 0)
	require.NoError(err)
	sel, err := NewSelection(table, pred)
	require.NoError(err)
	schema, err := sel.Schema()
	require.NoError(err)
	require.Equal([]string{"a", "b"}, schema.Names())

	notBool, err := Add(col, 1)
	require.NoError(err)
	_, err = NewSelection(table, notBool)
	require.True(rel.ErrNotBoolean.Is(err))
}

func TestReductionSchemas(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{amount: int64, ok: bool}")
	amount, err := NewColumn(table, "amount")
	require.NoError(err)
	ok, err := NewColumn(table, "ok")
	require.NoError(err)

	cases := []struct {
		build func(rel.Node) (*Reduction, error)
		child rel.Node
		typ   rel.ElementType
	}{
		{NewSum, amount, rel.Int64},
		{NewMean, amount, rel.Float64},
		{NewCount, amount, rel.Int64},
		{NewCountDistinct, amount, rel.Int64},
		{NewVariance, amount, rel.Float64},
		{NewStdDev, amount, rel.Float64},
		{NewMin, amount, rel.Int64},
		{NewMax, amount, rel.Int64},
		{NewAny, ok, rel.Boolean},
		{NewAll, ok, rel.Boolean},
	}
	for _, tc := range cases {
		r, err := tc.build(tc.child)
		require.NoError(err)
		schema, err := r.Schema()
		require.NoError(err)
		require.Len(schema, 1)
		require.Equal(tc.typ, schema[0].Type)
		require.True(Reduces(r))
	}

	_, err = NewSum(table)
	require.True(rel.ErrNotSingleColumn.Is(err))
}

func TestSummarySchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: int64}")
	a, err := NewColumn(table, "a")
	require.NoError(err)
	b, err := NewColumn(table, "b")
	require.NoError(err)
	total, err := NewSum(a)
	require.NoError(err)
	cnt, err := NewCount(b)
	require.NoError(err)

	s, err := NewSummary([]SummaryEntry{
		{Name: "total", Value: total},
		{Name: "cnt", Value: cnt},
	})
	require.NoError(err)

	// Entries are normalized to name order.
	schema, err := s.Schema()
	require.NoError(err)
	require.Equal([]string{"cnt", "total"}, schema.Names())
	require.Equal(rel.Int64, schema[0].Type)
	require.True(Reduces(s))

	_, err = NewSummary([]SummaryEntry{
		{Name: "x", Value: total},
		{Name: "x", Value: cnt},
	})
	require.True(rel.ErrDuplicateColumn.Is(err))
}

func TestBySchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{name: string, amount: int64, id: int64}")
	name, err := NewColumn(table, "name")
	require.NoError(err)
	amount, err := NewColumn(table, "amount")
	require.NoError(err)
	sum, err := NewSum(amount)
	require.NoError(err)

	by, err := NewBy(name, sum)
	require.NoError(err)
	schema, err := by.Schema()
	require.NoError(err)
	require.Equal([]string{"name", "amount"}, schema.Names())
	require.True(Equals(table, by.Parent()))

	// A row-producing apply is rejected at construction.
	_, err = NewBy(name, amount)
	require.True(rel.ErrNotReduction.Is(err))
}

func TestByRequiresSharedOrigin(t *testing.T) {
	require := require.New(t)

	t1 := mustTable(t, "t1", "{name: string}")
	t2 := mustTable(t, "t2", "{amount: int64}")
	name, err := NewColumn(t1, "name")
	require.NoError(err)
	amount, err := NewColumn(t2, "amount")
	require.NoError(err)
	sum, err := NewSum(amount)
	require.NoError(err)

	_, err = NewBy(name, sum)
	require.True(rel.ErrNoCommonAncestor.Is(err))
}

func TestSortDistinctHeadSchemas(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: string}")

	s, err := NewSort(table, nil, true)
	require.NoError(err)
	require.Equal([]string{"a"}, s.KeyColumns())
	schema, err := s.Schema()
	require.NoError(err)
	require.Equal([]string{"a", "b"}, schema.Names())

	_, err = NewSort(table, []string{"z"}, true)
	require.True(rel.ErrColumnNotFound.Is(err))

	d := NewDistinct(table)
	schema, err = d.Schema()
	require.NoError(err)
	require.Equal([]string{"a", "b"}, schema.Names())

	h := NewHead(table, 0)
	require.Equal(DefaultHeadCount, h.Count())
	schema, err = h.Schema()
	require.NoError(err)
	require.Equal([]string{"a", "b"}, schema.Names())
}

func TestLabelSchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{amount: int64, id: int64}")
	amount, err := NewColumn(table, "amount")
	require.NoError(err)
	sum, err := NewSum(amount)
	require.NoError(err)

	l, err := NewLabel(sum, "total")
	require.NoError(err)
	schema, err := l.Schema()
	require.NoError(err)
	require.True(schema.Equals(rel.MustParseRecord("{total: int64}")))
	require.True(Reduces(l))

	_, err = NewLabel(table, "x")
	require.True(rel.ErrNotSingleColumn.Is(err))
}

func TestReLabelSchema(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: string}")

	r, err := NewReLabel(table, map[string]string{"b": "label"})
	require.NoError(err)
	schema, err := r.Schema()
	require.NoError(err)
	require.Equal([]string{"a", "label"}, schema.Names())

	_, err = NewReLabel(table, map[string]string{"z": "x"})
	require.True(rel.ErrColumnNotFound.Is(err))

	_, err = NewReLabel(table, map[string]string{"b": "a"})
	require.True(rel.ErrDuplicateColumn.Is(err))
}

func TestMapSchemaRequiresDeclaration(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{time: int64}")
	fn := func(row rel.Row) (rel.Row, error) { return row, nil }

	m := NewMap(table, fn, nil)
	_, err := m.Schema()
	require.True(rel.ErrUndeclaredSchema.Is(err))

	declared := rel.MustParseRecord("{time: datetime}")
	m = NewMap(table, fn, declared)
	schema, err := m.Schema()
	require.NoError(err)
	require.True(schema.Equals(declared))
}

func TestApplySchemaShapes(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64}")
	fn := func(v interface{}) (interface{}, error) { return v, nil }

	undeclared := NewApply(table, fn, nil)
	_, err := undeclared.Schema()
	require.True(rel.ErrUndeclaredSchema.Is(err))
	require.False(Reduces(undeclared))

	scalarShape := NewApply(table, fn, &rel.Shape{Element: rel.Int64})
	_, err = scalarShape.Schema()
	require.True(rel.ErrNotTabular.Is(err))
	require.True(Reduces(scalarShape))

	tabular := NewApply(table, fn, &rel.Shape{Tabular: true, Row: rel.MustParseRecord("{n: int64}")})
	schema, err := tabular.Schema()
	require.NoError(err)
	require.Equal([]string{"n"}, schema.Names())
}

func TestJoinSchemaMerge(t *testing.T) {
	require := require.New(t)

	names := mustTable(t, "names", "{id: int64, name: string}")
	amounts := mustTable(t, "amounts", "{id: int64, amount: int64}")

	j, err := NewNaturalJoin(names, amounts, "id")
	require.NoError(err)
	schema, err := j.Schema()
	require.NoError(err)
	require.Equal([]string{"id", "name", "amount"}, schema.Names())
}

func TestJoinKeyTypeMismatch(t *testing.T) {
	require := require.New(t)

	names := mustTable(t, "names", "{id: string, name: string}")
	amounts := mustTable(t, "amounts", "{id: int64, amount: int64}")

	_, err := NewNaturalJoin(names, amounts, "id")
	require.True(rel.ErrKeyTypeMismatch.Is(err))
}

func TestJoinDuplicateColumn(t *testing.T) {
	require := require.New(t)

	left := mustTable(t, "l", "{id: int64, name: string}")
	right := mustTable(t, "r", "{id: int64, name: string}")

	_, err := NewNaturalJoin(left, right, "id")
	require.True(rel.ErrDuplicateColumn.Is(err))
}
