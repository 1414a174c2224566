package bptreeset

import "github.com/DavVader123/ADS-set/internal/tree"

// Iterator is a forward, single-pass iterator over a Set's keys in
// increasing order. The zero value is not a valid iterator; use
// Begin/End/Find/Insert to obtain one. Any Insert or Erase on the owning
// Set invalidates every live Iterator — the façade does not detect this.
type Iterator[K any] struct {
	it tree.Iterator[K]
}

// Valid reports whether the iterator is dereferenceable.
func (it Iterator[K]) Valid() bool { return it.it.Valid() }

// Key returns the key the iterator is positioned at. Undefined at End().
func (it Iterator[K]) Key() K { return it.it.Key() }

// Next returns an iterator advanced by one position.
func (it Iterator[K]) Next() Iterator[K] { return Iterator[K]{it: it.it.Next()} }

// Equal reports positional equality; every End() iterator compares equal
// to every other.
func (it Iterator[K]) Equal(other Iterator[K]) bool { return it.it.Equal(other.it) }
