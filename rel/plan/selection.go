package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Selection filters rows of its child by a boolean predicate expression
// built over the child's columns.
type Selection struct {
	Child     rel.Node
	Predicate rel.Node
}

var _ rel.Node = (*Selection)(nil)

// NewSelection creates a selection. The predicate must produce a single
// boolean column.
func NewSelection(child, predicate rel.Node) (*Selection, error) {
	pred, err := predicate.Schema()
	if err != nil {
		return nil, err
	}
	if len(pred) != 1 {
		return nil, rel.ErrNotSingleColumn.New(len(pred))
	}
	if pred[0].Type != rel.Boolean {
		return nil, rel.ErrNotBoolean.New(pred[0].Type)
	}
	return &Selection{Child: child, Predicate: predicate}, nil
}

// Schema implements the Node interface.
func (s *Selection) Schema() (rel.RecordType, error) {
	return s.Child.Schema()
}

// Children implements the Node interface.
func (s *Selection) Children() []rel.Node {
	return []rel.Node{s.Child, s.Predicate}
}

// WithChildren implements the Node interface.
func (s *Selection) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(s, 2, children); err != nil {
		return nil, err
	}
	return NewSelection(children[0], children[1])
}

func (s *Selection) String() string {
	return fmt.Sprintf("%s[%s]", s.Child, s.Predicate)
}
