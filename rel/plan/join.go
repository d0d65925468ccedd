package plan

import (
	"fmt"

	"github.com/tavola-io/go-tavola/rel"
)

// Join joins two tables on one key column per side. The result carries the
// left side's fields followed by the right side's fields minus the right
// key.
type Join struct {
	BinaryNode
	leftKey  string
	rightKey string
}

var _ rel.Node = (*Join)(nil)

// NewJoin creates a join. Both keys must exist with identical element types,
// and the merged schema must not contain duplicate names.
func NewJoin(left, right rel.Node, leftKey, rightKey string) (*Join, error) {
	lSchema, err := left.Schema()
	if err != nil {
		return nil, err
	}
	rSchema, err := right.Schema()
	if err != nil {
		return nil, err
	}

	lType, err := lSchema.FieldType(leftKey)
	if err != nil {
		return nil, err
	}
	rType, err := rSchema.FieldType(rightKey)
	if err != nil {
		return nil, err
	}
	if lType != rType {
		return nil, rel.ErrKeyTypeMismatch.New(leftKey, rightKey, lType, rType)
	}

	j := &Join{BinaryNode{Left: left, Right: right}, leftKey, rightKey}
	if _, err := j.Schema(); err != nil {
		return nil, err
	}
	return j, nil
}

// NewNaturalJoin joins on one shared key name.
func NewNaturalJoin(left, right rel.Node, on string) (*Join, error) {
	return NewJoin(left, right, on, on)
}

// LeftKey returns the left-side key column name.
func (j *Join) LeftKey() string { return j.leftKey }

// RightKey returns the right-side key column name.
func (j *Join) RightKey() string { return j.rightKey }

// Schema implements the Node interface.
func (j *Join) Schema() (rel.RecordType, error) {
	lSchema, err := j.Left.Schema()
	if err != nil {
		return nil, err
	}
	rSchema, err := j.Right.Schema()
	if err != nil {
		return nil, err
	}

	record := make(rel.RecordType, 0, len(lSchema)+len(rSchema)-1)
	record = append(record, lSchema...)
	for _, f := range rSchema {
		if f.Name == j.rightKey {
			continue
		}
		if record.Contains(f.Name) {
			return nil, rel.ErrDuplicateColumn.New(f.Name)
		}
		record = append(record, f)
	}
	return record, nil
}

// WithChildren implements the Node interface.
func (j *Join) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(j, 2, children); err != nil {
		return nil, err
	}
	return NewJoin(children[0], children[1], j.leftKey, j.rightKey)
}

func (j *Join) String() string {
	return fmt.Sprintf("Join(%s, %s, %s=%s)", j.Left, j.Right, j.leftKey, j.rightKey)
}
