package tavola

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavola-io/go-tavola/rel"
	"github.com/tavola-io/go-tavola/rel/plan"
)

func TestOptimize(t *testing.T) {
	require := require.New(t)
	ctx := rel.NewEmptyContext()

	accounts, err := plan.NewTable("accounts", "{name: string, amount: int64, id: int64}")
	require.NoError(err)
	amount, err := plan.NewColumn(accounts, "amount")
	require.NoError(err)
	pred, err := plan.LessThan(amount, 0)
	require.NoError(err)
	debtors, err := plan.NewSelection(accounts, pred)
	require.NoError(err)
	name, err := plan.NewColumn(debtors, "name")
	require.NoError(err)

	optimized, err := Optimize(ctx, name)
	require.NoError(err)

	schema, err := optimized.Schema()
	require.NoError(err)
	require.True(schema.Equals(rel.MustParseRecord("{name: string}")))

	// The id column is never consumed, so no subtree carries it.
	plan.Inspect(optimized, func(n rel.Node) bool {
		if p, ok := n.(*plan.Projection); ok {
			require.NotContains(p.Columns(), "id")
		}
		return true
	})
}

func TestOptimizeFields(t *testing.T) {
	require := require.New(t)
	ctx := rel.NewEmptyContext()
	require.NotEmpty(ctx.ID())

	accounts, err := plan.NewTable("accounts", "{name: string, amount: int64, id: int64}")
	require.NoError(err)

	optimized, err := OptimizeFields(ctx, accounts, []string{"name"})
	require.NoError(err)

	schema, err := optimized.Schema()
	require.NoError(err)
	require.True(schema.Equals(rel.MustParseRecord("{name: string}")))

	_, err = OptimizeFields(ctx, accounts, []string{"nmae"})
	require.True(rel.ErrFieldNotAvailable.Is(err))
}
