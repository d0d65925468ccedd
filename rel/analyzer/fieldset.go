package analyzer

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// fieldSet is an unordered set of source-table column names.
type fieldSet map[string]struct{}

func newFieldSet(names ...string) fieldSet {
	s := make(fieldSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

func (s fieldSet) add(name string) {
	s[name] = struct{}{}
}

func (s fieldSet) contains(name string) bool {
	_, ok := s[name]
	return ok
}

func (s fieldSet) union(other fieldSet) fieldSet {
	out := make(fieldSet, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// intersectNames keeps only the given names, preserving nothing else.
func (s fieldSet) intersectNames(names []string) fieldSet {
	out := make(fieldSet)
	for _, name := range names {
		if s.contains(name) {
			out.add(name)
		}
	}
	return out
}

// sorted returns the member names in canonical (sorted) order.
func (s fieldSet) sorted() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}
