package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tavola-io/go-tavola/rel"
)

// SummaryEntry is one named value of a Summary.
type SummaryEntry struct {
	Name  string
	Value rel.Node
}

// Summary computes a record of independently named scalar values, typically
// reductions over (possibly different) children.
type Summary struct {
	entries []SummaryEntry
}

var _ rel.Node = (*Summary)(nil)

// NewSummary creates a summary from named entries. Entries are normalized to
// name order; names must be unique and every value must produce a single
// column.
func NewSummary(entries []SummaryEntry) (*Summary, error) {
	sorted := make([]SummaryEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	seen := make(map[string]struct{}, len(sorted))
	for _, e := range sorted {
		if _, dup := seen[e.Name]; dup {
			return nil, rel.ErrDuplicateColumn.New(e.Name)
		}
		seen[e.Name] = struct{}{}

		schema, err := e.Value.Schema()
		if err != nil {
			return nil, err
		}
		if len(schema) != 1 {
			return nil, rel.ErrNotSingleColumn.New(len(schema))
		}
	}

	return &Summary{entries: sorted}, nil
}

// Entries returns the named values in name order.
func (s *Summary) Entries() []SummaryEntry { return s.entries }

// Schema implements the Node interface: one field per entry, named by the
// entry, typed by its value's single column.
func (s *Summary) Schema() (rel.RecordType, error) {
	record := make(rel.RecordType, len(s.entries))
	for i, e := range s.entries {
		schema, err := e.Value.Schema()
		if err != nil {
			return nil, err
		}
		record[i] = rel.Field{Name: e.Name, Type: schema[0].Type}
	}
	return record, nil
}

// Children implements the Node interface: the entry values in entry order.
func (s *Summary) Children() []rel.Node {
	children := make([]rel.Node, len(s.entries))
	for i, e := range s.entries {
		children[i] = e.Value
	}
	return children
}

// WithChildren implements the Node interface.
func (s *Summary) WithChildren(children ...rel.Node) (rel.Node, error) {
	if err := expectChildren(s, len(s.entries), children); err != nil {
		return nil, err
	}
	entries := make([]SummaryEntry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = SummaryEntry{Name: e.Name, Value: children[i]}
	}
	return NewSummary(entries)
}

func (s *Summary) String() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = fmt.Sprintf("%s=%s", e.Name, e.Value)
	}
	return "Summary(" + strings.Join(parts, ", ") + ")"
}
