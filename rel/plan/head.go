package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// DefaultHeadCount is the row count used when none is given.
const DefaultHeadCount = 10

// Head keeps the first n rows of its child. The row-level schema is
// unchanged; only the table-level row count becomes fixed.
type Head struct {
	UnaryNode
	count int
}

var _ rel.Node = (*Head)(nil)

// NewHead creates a head limit. A non-positive n falls back to
// DefaultHeadCount.
func NewHead(child rel.Node, n int) *Head {
	if n <= 0 {
		n = DefaultHeadCount
	}
	return &Head{UnaryNode{Child: child}, n}
}

// Count returns the fixed row count.
func (h *Head) Count() int { return h.count }

// WithChildren implements the Node interface.
func (h *Head) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(h, 1, children); err != nil {
		return nil, err
	}
	return NewHead(children[0], h.count), nil
}

func (h *Head) String() string {
	return fmt.Sprintf("Head(%s, %d)", h.Child, h.count)
}
