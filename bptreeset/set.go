// Package bptreeset is a thin, idiomatic-Go wrapper exposed to callers over
// internal/tree's B+ tree core, renamed to ordered-set vocabulary
// (Insert/Erase/Contains/Find) and rounded out with copy, equality, and
// bulk-insert operations alongside the core tree operations.
package bptreeset

import (
	"io"

	"golang.org/x/exp/constraints"

	"github.com/DavVader123/ADS-set/internal/tree"
)

// CompareFn orders two keys: negative if a < b, zero if equal, positive if
// a > b.
type CompareFn[K any] func(a, b K) int

// config is the construction-time configuration a Set allows: one integer
// N, the branching parameter, default 3.
type config[K any] struct {
	order int
}

// Option configures a Set at construction time.
type Option[K any] func(*config[K])

// WithOrder sets N, the minimum (and half the maximum) node fill. The
// default is 3.
func WithOrder[K any](n int) Option[K] {
	return func(c *config[K]) { c.order = n }
}

// Set is an in-memory ordered set of K, backed by a B+ tree. Not safe for
// concurrent mutation; concurrent reads are safe only under an external
// guarantee that no writer runs.
type Set[K any] struct {
	t *tree.Tree[K]
}

// New constructs an empty Set ordered by cmp.
func New[K any](cmp CompareFn[K], opts ...Option[K]) *Set[K] {
	cfg := config[K]{order: tree.DefaultOrder}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Set[K]{t: tree.New[K](tree.CompareFn[K](cmp), cfg.order)}
}

// NewOrdered constructs an empty Set over any constraints.Ordered type,
// using its natural order.
func NewOrdered[K constraints.Ordered](opts ...Option[K]) *Set[K] {
	return New[K](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}, opts...)
}

// NewFromSlice builds a Set from an initial batch of keys.
func NewFromSlice[K any](cmp CompareFn[K], keys []K, opts ...Option[K]) *Set[K] {
	s := New(cmp, opts...)
	s.InsertAll(keys...)
	return s
}

// NewOrderedFromSlice is NewFromSlice's constraints.Ordered convenience.
func NewOrderedFromSlice[K constraints.Ordered](keys []K, opts ...Option[K]) *Set[K] {
	s := NewOrdered[K](opts...)
	s.InsertAll(keys...)
	return s
}

// Len is the number of keys currently stored.
func (s *Set[K]) Len() int { return s.t.Len() }

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.t.Len() == 0 }

// Order returns the configured branching parameter N.
func (s *Set[K]) Order() int { return s.t.Order() }

// Contains reports whether k is a member.
func (s *Set[K]) Contains(k K) bool { return s.t.Contains(k) }

// Find returns a live iterator positioned at k, or End() if k is absent.
func (s *Set[K]) Find(k K) Iterator[K] { return Iterator[K]{it: s.t.Find(k)} }

// Insert adds k if absent. It returns an iterator positioned at k (whether
// newly inserted or already present) and whether the insert was new.
func (s *Set[K]) Insert(k K) (Iterator[K], bool) {
	it, inserted := s.t.Insert(k)
	return Iterator[K]{it: it}, inserted
}

// InsertAll inserts each key in keys, ignoring duplicates.
func (s *Set[K]) InsertAll(keys ...K) {
	for _, k := range keys {
		s.t.Insert(k)
	}
}

// Erase removes k if present, returning 1 if it was removed and 0 if it
// was absent.
func (s *Set[K]) Erase(k K) int { return s.t.Erase(k) }

// Begin returns an iterator at the smallest key, or End() if the set is
// empty.
func (s *Set[K]) Begin() Iterator[K] { return Iterator[K]{it: s.t.Begin()} }

// End returns the sentinel end iterator.
func (s *Set[K]) End() Iterator[K] { return Iterator[K]{it: s.t.End()} }

// Clear removes every key.
func (s *Set[K]) Clear() { s.t.Clear() }

// Clone deep-copies the set. Go values are assigned by reference here (Set
// wraps a pointer to the tree), so Clone is the explicit deep-copy entry
// point assignment would otherwise silently skip.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{t: s.t.Clone()} }

// Swap exchanges the contents of s and other in constant time.
func (s *Set[K]) Swap(other *Set[K]) { s.t.Swap(other.t) }

// Equal reports whether s and other hold the same keys in the same order,
// using keyEqual for element comparison.
func (s *Set[K]) Equal(other *Set[K], keyEqual func(a, b K) bool) bool {
	return s.t.Equal(other.t, keyEqual)
}

// Verify walks the whole tree checking its structural invariants. It is a
// testing/debugging aid, not part of the steady-state operation surface.
func (s *Set[K]) Verify() error { return s.t.Verify() }

// Dump writes a nested Internal[...]/Leaf[...] diagnostic rendering of the
// tree to w. Purely diagnostic; not a persistence format.
func (s *Set[K]) Dump(w io.Writer) error { return s.t.Dump(w) }

// EqualComparable compares two Sets over a comparable key type using ==,
// a convenience for the common case where Equal's custom keyEqual would
// just be ==.
func EqualComparable[K comparable](a, b *Set[K]) bool {
	return a.Equal(b, func(x, y K) bool { return x == y })
}
