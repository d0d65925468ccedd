package rel

import (
	"fmt"
	"strings"

	"github.com/tavola-io/go-tavola/internal/similartext"
)

// Field is one named, typed entry of a record type.
type Field struct {
	Name string
	Type ElementType
}

// RecordType is the schema of one row of a table-shaped expression: an
// ordered sequence of uniquely-named fields.
type RecordType []Field

// Names returns the field names in schema order.
func (r RecordType) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Contains returns whether the record has a field with the given name.
func (r RecordType) Contains(name string) bool {
	return r.IndexOf(name) >= 0
}

// IndexOf returns the index of the named field, or -1 if it is not present.
func (r RecordType) IndexOf(name string) int {
	for i, f := range r {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FieldType returns the element type of the named field.
func (r RecordType) FieldType(name string) (ElementType, error) {
	idx := r.IndexOf(name)
	if idx < 0 {
		return ElementType{}, ErrColumnNotFound.New(name, r, similartext.Find(r.Names(), name))
	}
	return r[idx].Type, nil
}

// Equals checks whether the given record type is structurally equal to this
// one: same fields, same types, same order.
func (r RecordType) Equals(other RecordType) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Restrict returns a new record type containing exactly the named fields, in
// the order given. Every name must be present.
func (r RecordType) Restrict(names []string) (RecordType, error) {
	out := make(RecordType, 0, len(names))
	for _, name := range names {
		idx := r.IndexOf(name)
		if idx < 0 {
			return nil, ErrColumnNotFound.New(name, r, similartext.Find(r.Names(), name))
		}
		out = append(out, r[idx])
	}
	return out, nil
}

// Rename returns a new record type with the mapped names substituted, order
// preserved. Every key of the mapping must name an existing field, and the
// result must remain uniquely named.
func (r RecordType) Rename(mapping map[string]string) (RecordType, error) {
	for old := range mapping {
		if !r.Contains(old) {
			return nil, ErrColumnNotFound.New(old, r, similartext.Find(r.Names(), old))
		}
	}

	out := make(RecordType, len(r))
	seen := make(map[string]struct{}, len(r))
	for i, f := range r {
		name := f.Name
		if renamed, ok := mapping[name]; ok {
			name = renamed
		}
		if _, dup := seen[name]; dup {
			return nil, ErrDuplicateColumn.New(name)
		}
		seen[name] = struct{}{}
		out[i] = Field{Name: name, Type: f.Type}
	}
	return out, nil
}

func (r RecordType) String() string {
	parts := make([]string, len(r))
	for i, f := range r {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
