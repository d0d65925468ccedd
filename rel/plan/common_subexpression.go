package plan

import "github.com/tavola-io/go-tavola/rel"

// CommonSubexpression returns the largest subtree present, structurally
// identically, in both expressions: the shared node two independent chains
// of rewrites were built from. Structurally equal candidates are
// interchangeable, so any representative may be returned.
func CommonSubexpression(a, b rel.Node) (rel.Node, error) {
	arena := make(map[uint64][]rel.Node)
	var walkErr error
	Inspect(b, func(n rel.Node) bool {
		h, err := Fingerprint(n)
		if err != nil {
			walkErr = err
			return false
		}
		arena[h] = append(arena[h], n)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	var best rel.Node
	bestSize := -1
	Inspect(a, func(n rel.Node) bool {
		h, err := Fingerprint(n)
		if err != nil {
			walkErr = err
			return false
		}
		for _, candidate := range arena[h] {
			if Equals(n, candidate) {
				if size := subtreeSize(n); size > bestSize {
					best, bestSize = n, size
				}
				// Subtrees of a shared node are shared too; no need to
				// descend further on this path.
				return false
			}
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if best == nil {
		return nil, rel.ErrNoCommonAncestor.New(a, b)
	}
	return best, nil
}

func subtreeSize(n rel.Node) int {
	size := 0
	Inspect(n, func(rel.Node) bool {
		size++
		return true
	})
	return size
}
