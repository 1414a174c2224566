package tree

import "sort"

// search returns the index of the first key >= target in keys (a
// sort.Search over a cmp-ordered slice), and whether that key equals
// target.
func search[K any](cmp CompareFn[K], keys []K, target K) (index int, found bool) {
	i := sort.Search(len(keys), func(i int) bool {
		return cmp(keys[i], target) >= 0
	})
	return i, i < len(keys) && cmp(keys[i], target) == 0
}

// leafContains reports whether k is present in this leaf.
func (n *node[K]) leafContains(cmp CompareFn[K], k K) bool {
	_, found := search(cmp, n.keys, k)
	return found
}

// leafLocate returns the index of k within this leaf, or "not present".
func (n *node[K]) leafLocate(cmp CompareFn[K], k K) (index int, found bool) {
	return search(cmp, n.keys, k)
}

// leafInsert inserts k in sorted position if absent. It never touches
// sibling links — those are the parent's responsibility during split.
func (n *node[K]) leafInsert(cmp CompareFn[K], order int, k K) InsertResult {
	i, found := search(cmp, n.keys, k)
	if found {
		return InsertExists
	}
	n.keys = insertKeyAt(n.keys, i, k)
	if n.overflowed(order) {
		return InsertOverflow
	}
	return InsertOK
}

// leafRemove removes k from this leaf if present.
func (n *node[K]) leafRemove(cmp CompareFn[K], order int, k K) RemoveResult {
	i, found := search(cmp, n.keys, k)
	if !found {
		return RemoveAbsent
	}
	n.keys = removeKeyAt(n.keys, i)
	if n.underflowed(order) {
		return RemoveUnderflow
	}
	return RemoveOK
}
