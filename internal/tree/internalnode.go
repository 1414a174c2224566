package tree

import (
	"sort"

	"github.com/DavVader123/ADS-set/internal/errs"
)

// descend returns the index of the child to recurse into for k: the first
// index i with k < separators[i], or len(separators) if k is at least as
// large as every separator.
func descend[K any](cmp CompareFn[K], separators []K, k K) int {
	return sort.Search(len(separators), func(i int) bool {
		return cmp(k, separators[i]) < 0
	})
}

// contains reports whether k is present anywhere in the subtree rooted at
// n, recursing from internal nodes down to the holding leaf.
func (n *node[K]) contains(cmp CompareFn[K], k K) bool {
	if n.leaf {
		return n.leafContains(cmp, k)
	}
	return n.children[descend(cmp, n.keys, k)].contains(cmp, k)
}

// locate returns the leaf holding k and its index within that leaf, or
// found=false if k is absent from the subtree rooted at n.
func (n *node[K]) locate(cmp CompareFn[K], k K) (leaf *node[K], index int, found bool) {
	if n.leaf {
		index, found = n.leafLocate(cmp, k)
		return n, index, found
	}
	return n.children[descend(cmp, n.keys, k)].locate(cmp, k)
}

// insert recurses into the selected child, splits it on overflow, then
// reports this node's own fill state.
func (n *node[K]) insert(cmp CompareFn[K], order int, k K) InsertResult {
	if n.leaf {
		return n.leafInsert(cmp, order, k)
	}
	i := descend(cmp, n.keys, k)
	child := n.children[i]
	res := child.insert(cmp, order, k)
	switch res {
	case InsertExists:
		return InsertExists
	case InsertOverflow:
		n.split(i, order)
	}
	if n.overflowed(order) {
		return InsertOverflow
	}
	return InsertOK
}

// remove recurses into the selected child, merges it on underflow, then
// reports this node's own fill state.
func (n *node[K]) remove(cmp CompareFn[K], order int, k K) RemoveResult {
	if n.leaf {
		return n.leafRemove(cmp, order, k)
	}
	i := descend(cmp, n.keys, k)
	child := n.children[i]
	res := child.remove(cmp, order, k)
	switch res {
	case RemoveAbsent:
		return RemoveAbsent
	case RemoveUnderflow:
		n.merge(i, order)
	}
	if n.underflowed(order) {
		return RemoveUnderflow
	}
	return RemoveOK
}

// split rebalances the child at index i, which must be in the transient
// 2N+1 state, into two nodes: N and N+1 keys for a leaf (the right half's
// first key is copied up as the separator), N and N keys for an internal
// node (the median is promoted into n).
func (n *node[K]) split(i int, order int) {
	child := n.children[i]
	errs.AssertTrue(len(child.keys) == 2*order+1,
		"split called on child with %d keys, want %d", len(child.keys), 2*order+1)

	splitPoint := len(child.keys) / 2 // floor((2N+1)/2) == N

	if child.leaf {
		right := newLeaf[K](order)
		right.keys = append(right.keys, child.keys[splitPoint:]...)
		child.keys = child.keys[:splitPoint:splitPoint]

		right.prev = child
		right.next = child.next
		if child.next != nil {
			child.next.prev = right
		}
		child.next = right

		n.keys = insertKeyAt(n.keys, i, right.keys[0])
		n.children = insertChildAt(n.children, i+1, right)
		return
	}

	promoted := child.keys[splitPoint]
	right := newInternal[K](order)
	right.keys = append(right.keys, child.keys[splitPoint+1:]...)
	right.children = append(right.children, child.children[splitPoint+1:]...)
	child.keys = child.keys[:splitPoint:splitPoint]
	child.children = child.children[:splitPoint+1 : splitPoint+1]

	n.keys = insertKeyAt(n.keys, i, promoted)
	n.children = insertChildAt(n.children, i+1, right)
}

// merge rebalances the undersize child at index i by picking a sibling
// (the larger one, ties to the right, edges forcing the only available
// side) and redistributing from it, or fusing with it if neither sibling
// has a spare key.
func (n *node[K]) merge(i int, order int) {
	hasLeft := i > 0
	hasRight := i < len(n.children)-1
	errs.AssertTrue(hasLeft || hasRight, "merge called on only child at index %d", i)

	var leftSize, rightSize int
	if hasLeft {
		leftSize = len(n.children[i-1].keys)
	}
	if hasRight {
		rightSize = len(n.children[i+1].keys)
	}

	useRight := hasRight && (!hasLeft || rightSize >= leftSize)

	switch {
	case useRight && rightSize > order:
		n.redistributeFromRight(i)
	case useRight:
		n.fuseAt(i, order)
	case leftSize > order:
		n.redistributeFromLeft(i)
	default:
		n.fuseAt(i-1, order)
	}
}

// redistributeFromRight moves one key (and, for internal children, one
// child) from the right sibling into the undersize child at index i.
func (n *node[K]) redistributeFromRight(i int) {
	child := n.children[i]
	sibling := n.children[i+1]

	if child.leaf {
		moved := sibling.keys[0]
		sibling.keys = removeKeyAt(sibling.keys, 0)
		child.keys = append(child.keys, moved)
		n.keys[i] = sibling.keys[0]
		return
	}

	pulled := n.keys[i]
	child.keys = append(child.keys, pulled)
	movedChild := sibling.children[0]
	sibling.children = removeChildAt(sibling.children, 0)
	child.children = append(child.children, movedChild)

	promoted := sibling.keys[0]
	sibling.keys = removeKeyAt(sibling.keys, 0)
	n.keys[i] = promoted
}

// redistributeFromLeft moves one key (and, for internal children, one
// child) from the left sibling into the undersize child at index i.
func (n *node[K]) redistributeFromLeft(i int) {
	child := n.children[i]
	sibling := n.children[i-1]

	if child.leaf {
		moved := sibling.keys[len(sibling.keys)-1]
		sibling.keys = sibling.keys[:len(sibling.keys)-1]
		child.keys = insertKeyAt(child.keys, 0, moved)
		n.keys[i-1] = moved
		return
	}

	pulled := n.keys[i-1]
	child.keys = insertKeyAt(child.keys, 0, pulled)
	movedChild := sibling.children[len(sibling.children)-1]
	sibling.children = sibling.children[:len(sibling.children)-1]
	child.children = insertChildAt(child.children, 0, movedChild)

	promoted := sibling.keys[len(sibling.keys)-1]
	sibling.keys = sibling.keys[:len(sibling.keys)-1]
	n.keys[i-1] = promoted
}

// fuseAt combines children[i] and children[i+1] into children[i], dropping
// separator i and child i+1 from the parent. Regardless of which side of
// the undersize child merge chose as the sibling to absorb, a left-sibling
// fuse is just fuseAt(i-1): the sibling becomes the surviving left node and
// the originally-undersize child is absorbed into it.
func (n *node[K]) fuseAt(i int, order int) {
	left := n.children[i]
	right := n.children[i+1]

	if left.leaf {
		left.keys = append(left.keys, right.keys...)
		left.next = right.next
		if right.next != nil {
			right.next.prev = left
		}
	} else {
		left.keys = append(left.keys, n.keys[i])
		left.keys = append(left.keys, right.keys...)
		left.children = append(left.children, right.children...)
	}

	// The combined size cannot exceed 2N given the invariants merge is
	// called under. If it ever does, that is a bug in this package, not a
	// case to silently repair by re-splitting.
	errs.AssertTrue(len(left.keys) <= 2*order,
		"fuse produced %d keys, exceeding 2N=%d", len(left.keys), 2*order)

	n.keys = removeKeyAt(n.keys, i)
	n.children = removeChildAt(n.children, i+1)
}
