package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavola-io/go-tavola/rel"
)

func TestEqualsAndFingerprint(t *testing.T) {
	require := require.New(t)

	t1 := mustTable(t, "t", "{a: int64, b: int64}")
	t2 := mustTable(t, "t", "{a: int64, b: int64}")

	p1, err := NewProjection(t1, []string{"a"})
	require.NoError(err)
	p2, err := NewProjection(t2, []string{"a"})
	require.NoError(err)
	p3, err := NewProjection(t1, []string{"b"})
	require.NoError(err)

	require.True(Equals(p1, p2))
	require.False(Equals(p1, p3))
	require.False(Equals(p1, t1))

	h1, err := Fingerprint(p1)
	require.NoError(err)
	h2, err := Fingerprint(p2)
	require.NoError(err)
	h3, err := Fingerprint(p3)
	require.NoError(err)
	require.Equal(h1, h2)
	require.NotEqual(h1, h3)
}

func TestCommonSubexpression(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{name: string, amount: int64}")
	shared, err := NewProjection(table, []string{"name", "amount"})
	require.NoError(err)

	// Two independent chains over the same shared projection.
	name, err := NewColumn(shared, "name")
	require.NoError(err)
	amount, err := NewColumn(shared, "amount")
	require.NoError(err)
	sum, err := NewSum(amount)
	require.NoError(err)

	ancestor, err := CommonSubexpression(name, sum)
	require.NoError(err)
	require.True(Equals(shared, ancestor))
}

func TestCommonSubexpressionNone(t *testing.T) {
	require := require.New(t)

	t1 := mustTable(t, "t1", "{a: int64}")
	t2 := mustTable(t, "t2", "{b: int64}")

	_, err := CommonSubexpression(t1, t2)
	require.True(rel.ErrNoCommonAncestor.Is(err))
}

func TestSubstitute(t *testing.T) {
	require := require.New(t)

	table := mustTable(t, "t", "{a: int64, b: int64}")
	a, err := NewColumn(table, "a")
	require.NoError(err)
	pred, err := GreaterThan(a, 0)
	require.NoError(err)
	sel, err := NewSelection(table, pred)
	require.NoError(err)

	pruned, err := NewProjection(table, []string{"a", "b"})
	require.NoError(err)

	rewritten, err := Substitute(sel, table, pruned)
	require.NoError(err)

	// Both the selection child and the predicate's source now reference the
	// pruned projection; the original tree is untouched.
	newSel, ok := rewritten.(*Selection)
	require.True(ok)
	require.True(Equals(pruned, newSel.Child))
	require.True(Equals(pruned, newSel.Predicate.(*ColumnWise).Source()))
	require.True(Equals(table, sel.Child))
}
