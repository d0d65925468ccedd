// Package scalar contains the scalar expression tree evaluated per row
// inside a columnwise table expression: column placeholders, literals and
// the operators combining them.
package scalar

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/tavola-io/go-tavola/rel"
)

// Expr is a scalar expression over symbolic column placeholders.
// Expressions are immutable.
type Expr interface {
	fmt.Stringer
	// Type returns the element type the expression evaluates to.
	Type() rel.ElementType
	// Children returns the immediate sub-expressions.
	Children() []Expr
}

// Inspect traverses the expression tree in prefix order, calling f on every
// expression. If f returns false the children of the current expression are
// skipped.
func Inspect(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	for _, child := range e.Children() {
		Inspect(child, f)
	}
}

// Columns returns the names of every column placeholder referenced anywhere
// in the expression, sorted and de-duplicated.
func Columns(e Expr) []string {
	seen := make(map[string]struct{})
	Inspect(e, func(e Expr) bool {
		if sym, ok := e.(*Symbol); ok {
			seen[sym.Name()] = struct{}{}
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
