package tree

import "github.com/DavVader123/ADS-set/internal/errs"

// Iterator is a (leaf, index) pair walking the leaf chain, with the zero
// value as the end sentinel (nil leaf, index 0). Forward, single-pass; any
// structural mutation of the owning tree invalidates every live iterator,
// and this type does not attempt to detect that.
type Iterator[K any] struct {
	leaf  *node[K]
	index int
}

// Valid reports whether the iterator is dereferenceable.
func (it Iterator[K]) Valid() bool {
	return it.leaf != nil
}

// Key dereferences the iterator. Calling it on an end iterator panics.
func (it Iterator[K]) Key() K {
	errs.AssertTrue(it.Valid(), "Key called on an end iterator")
	return it.leaf.keys[it.index]
}

// Next advances the iterator one position, crossing to the next leaf in
// the chain on exhaustion and becoming end if there is none.
func (it Iterator[K]) Next() Iterator[K] {
	if !it.Valid() {
		return it
	}
	it.index++
	if it.index < len(it.leaf.keys) {
		return it
	}
	if it.leaf.next == nil {
		return Iterator[K]{}
	}
	return Iterator[K]{leaf: it.leaf.next, index: 0}
}

// Equal reports positional equality: same leaf handle and same index (all
// ends compare equal).
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.leaf == other.leaf && it.index == other.index
}
