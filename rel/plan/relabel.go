package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tavola-io/go-tavola/rel"
)

// ReLabel renames a subset of its child's columns, preserving field order.
type ReLabel struct {
	UnaryNode
	mapping map[string]string
}

var _ rel.Node = (*ReLabel)(nil)

// NewReLabel creates a rename. Every key must name an existing column and
// the renamed schema must remain uniquely named.
func NewReLabel(child rel.Node, mapping map[string]string) (*ReLabel, error) {
	schema, err := child.Schema()
	if err != nil {
		return nil, err
	}
	if _, err := schema.Rename(mapping); err != nil {
		return nil, err
	}

	copied := make(map[string]string, len(mapping))
	for k, v := range mapping {
		copied[k] = v
	}
	return &ReLabel{UnaryNode{Child: child}, copied}, nil
}

// Mapping returns a copy of the rename mapping.
func (r *ReLabel) Mapping() map[string]string {
	out := make(map[string]string, len(r.mapping))
	for k, v := range r.mapping {
		out[k] = v
	}
	return out
}

// Schema implements the Node interface.
func (r *ReLabel) Schema() (rel.RecordType, error) {
	schema, err := r.Child.Schema()
	if err != nil {
		return nil, err
	}
	return schema.Rename(r.mapping)
}

// WithChildren implements the Node interface.
func (r *ReLabel) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(r, 1, children); err != nil {
		return nil, err
	}
	return NewReLabel(children[0], r.mapping)
}

func (r *ReLabel) String() string {
	pairs := make([]string, 0, len(r.mapping))
	for k, v := range r.mapping {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("ReLabel(%s, %s)", r.Child, strings.Join(pairs, ", "))
}
