package tree

import "github.com/DavVader123/ADS-set/internal/errs"

// DefaultOrder is the default minimum fill N for a tree constructed without
// an explicit order.
const DefaultOrder = 3

// Tree is a B+ tree ordered set. It owns the root, tracks the leftmost leaf
// for O(1) Begin(), and counts its keys.
type Tree[K any] struct {
	cmp      CompareFn[K]
	order    int
	root     *node[K]
	leftmost *node[K]
	size     int
}

// New constructs an empty tree: a single empty leaf root, with the
// leftmost-leaf pointer aliasing it.
func New[K any](cmp CompareFn[K], order int) *Tree[K] {
	errs.AssertTrue(order >= 1, "order must be >= 1, got %d", order)
	root := newLeaf[K](order)
	return &Tree[K]{
		cmp:      cmp,
		order:    order,
		root:     root,
		leftmost: root,
	}
}

// Len returns the number of keys stored.
func (t *Tree[K]) Len() int { return t.size }

// Order returns the tree's configured N.
func (t *Tree[K]) Order() int { return t.order }

// Contains reports whether k is present.
func (t *Tree[K]) Contains(k K) bool {
	return t.root.contains(t.cmp, k)
}

// Find returns a live iterator on k, or End() if k is absent.
func (t *Tree[K]) Find(k K) Iterator[K] {
	leaf, index, found := t.root.locate(t.cmp, k)
	if !found {
		return Iterator[K]{}
	}
	return Iterator[K]{leaf: leaf, index: index}
}

// Insert dispatches to the root, grows the tree if the root overflowed,
// and increments size on success.
func (t *Tree[K]) Insert(k K) (Iterator[K], bool) {
	res := t.root.insert(t.cmp, t.order, k)
	if res == InsertOverflow {
		t.grow()
	}
	if res == InsertExists {
		leaf, index, found := t.root.locate(t.cmp, k)
		errs.AssertTrue(found, "insert reported EXISTS but locate could not find the key")
		return Iterator[K]{leaf: leaf, index: index}, false
	}
	t.size++
	t.fixLeftmost()
	leaf, index, found := t.root.locate(t.cmp, k)
	errs.AssertTrue(found, "insert reported OK but locate could not find the key afterwards")
	return Iterator[K]{leaf: leaf, index: index}, true
}

// Erase dispatches to the root, shrinks the tree if the root was left an
// internal node with a single child, and decrements size on success.
func (t *Tree[K]) Erase(k K) int {
	res := t.root.remove(t.cmp, t.order, k)
	if res == RemoveAbsent {
		return 0
	}
	t.size--
	if !t.root.leaf && len(t.root.keys) == 0 {
		t.shrink()
	}
	t.fixLeftmost()
	return 1
}

// grow wraps the oversize root in a fresh internal root and splits it at
// index 0, increasing height by one.
func (t *Tree[K]) grow() {
	newRoot := newInternal[K](t.order)
	newRoot.children = append(newRoot.children, t.root)
	newRoot.split(0, t.order)
	t.root = newRoot
}

// shrink replaces an internal root left with zero separators (one child)
// by that lone child, decreasing height by one.
func (t *Tree[K]) shrink() {
	t.root = t.root.children[0]
}

// fixLeftmost re-walks the left spine to find the current leftmost leaf.
// Structural changes at the left spine (a split or merge touching index 0)
// can replace the leaf leftmost pointed at; this is O(height), cheap next
// to the O(log n) mutation that triggered it.
func (t *Tree[K]) fixLeftmost() {
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}
	t.leftmost = n
}

// Begin returns an iterator at the leftmost leaf's first key, or End() if
// the tree is empty.
func (t *Tree[K]) Begin() Iterator[K] {
	if t.leftmost == nil || len(t.leftmost.keys) == 0 {
		return Iterator[K]{}
	}
	return Iterator[K]{leaf: t.leftmost, index: 0}
}

// End returns the sentinel iterator one past the last key.
func (t *Tree[K]) End() Iterator[K] {
	return Iterator[K]{}
}

// Clear drops the tree and reinstalls an empty leaf as root.
func (t *Tree[K]) Clear() {
	root := newLeaf[K](t.order)
	t.root = root
	t.leftmost = root
	t.size = 0
}

// Clone deep-copies the tree into an independent copy sharing no nodes
// with the original.
func (t *Tree[K]) Clone() *Tree[K] {
	clone := New[K](t.cmp, t.order)
	clone.root = cloneNode(t.root, t.order)
	relinkLeaves(clone.root)
	clone.leftmost = clone.root
	for !clone.leftmost.leaf {
		clone.leftmost = clone.leftmost.children[0]
	}
	clone.size = t.size
	return clone
}

func cloneNode[K any](n *node[K], order int) *node[K] {
	if n.leaf {
		c := newLeaf[K](order)
		c.keys = append(c.keys, n.keys...)
		return c
	}
	c := newInternal[K](order)
	c.keys = append(c.keys, n.keys...)
	for _, child := range n.children {
		c.children = append(c.children, cloneNode(child, order))
	}
	return c
}

// relinkLeaves fixes up prev/next across a freshly cloned subtree's leaves;
// Clone builds each leaf independently, so cross-leaf links must be
// restitched by a left-to-right leaf walk afterward.
func relinkLeaves[K any](root *node[K]) {
	var prev *node[K]
	var walk func(n *node[K])
	walk = func(n *node[K]) {
		if n.leaf {
			n.prev = prev
			if prev != nil {
				prev.next = n
			}
			prev = n
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	if prev != nil {
		prev.next = nil
	}
}

// Swap exchanges root, leftmost-leaf, and size with other.
func (t *Tree[K]) Swap(other *Tree[K]) {
	t.root, other.root = other.root, t.root
	t.leftmost, other.leftmost = other.leftmost, t.leftmost
	t.size, other.size = other.size, t.size
}

// Equal reports whether t and other have equal sizes and pairwise-equal
// keys in iteration order.
func (t *Tree[K]) Equal(other *Tree[K], keyEqual func(a, b K) bool) bool {
	if t.size != other.size {
		return false
	}
	it, oit := t.Begin(), other.Begin()
	for it.Valid() {
		if !oit.Valid() || !keyEqual(it.Key(), oit.Key()) {
			return false
		}
		it = it.Next()
		oit = oit.Next()
	}
	return !oit.Valid()
}
