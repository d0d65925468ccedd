package plan

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/hashstructure"

	"github.com/tavola-io/go-tavola/rel"
)

// Equals reports structural equality: same kind, same kind-specific fields,
// structurally equal children. Function-valued fields compare by function
// identity. Structurally equal nodes are behaviorally interchangeable.
func Equals(a, b rel.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if detailOf(a) != detailOf(b) {
		return false
	}

	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equals(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// nodeKey is the hashable description of one node: its kind, its
// kind-specific fields, and the fingerprints of its children.
type nodeKey struct {
	Kind     string
	Detail   string
	Children []uint64
}

// Fingerprint returns a structural key for the node, usable to address
// structurally identical subtrees in an arena.
func Fingerprint(n rel.Node) (uint64, error) {
	children := n.Children()
	key := nodeKey{
		Kind:     fmt.Sprintf("%T", n),
		Detail:   detailOf(n),
		Children: make([]uint64, len(children)),
	}
	for i, c := range children {
		h, err := Fingerprint(c)
		if err != nil {
			return 0, err
		}
		key.Children[i] = h
	}
	return hashstructure.Hash(key, nil)
}

// detailOf renders the kind-specific fields of a node, excluding children.
func detailOf(n rel.Node) string {
	switch n := n.(type) {
	case *Symbol:
		return n.name + " " + n.schema.String()
	case *Projection:
		return strings.Join(n.columns, ",")
	case *Column:
		return n.name
	case *ColumnWise:
		return n.expr.String() + " " + n.expr.Type().Name()
	case *Reduction:
		return n.op
	case *Summary:
		names := make([]string, len(n.entries))
		for i, e := range n.entries {
			names[i] = e.Name
		}
		return strings.Join(names, ",")
	case *Sort:
		return strings.Join(n.columns, ",") + " asc=" + strconv.FormatBool(n.ascending)
	case *Head:
		return strconv.Itoa(n.count)
	case *Label:
		return n.label
	case *ReLabel:
		pairs := make([]string, 0, len(n.mapping))
		for k, v := range n.mapping {
			pairs = append(pairs, k+"="+v)
		}
		sort.Strings(pairs)
		return strings.Join(pairs, ",")
	case *Map:
		return funcID(n.fn) + " " + n.declared.String()
	case *Apply:
		return funcID(n.fn) + " " + shapeDetail(n.shape)
	case *Join:
		return n.leftKey + "=" + n.rightKey
	default:
		// Selection, By, Distinct: fully described by their children.
		return ""
	}
}

func funcID(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return "nil"
	}
	return strconv.FormatUint(uint64(v.Pointer()), 16)
}

func shapeDetail(s *rel.Shape) string {
	if s == nil {
		return "undeclared"
	}
	if s.Tabular {
		return "tabular " + s.Row.String()
	}
	return "scalar " + s.Element.Name()
}
