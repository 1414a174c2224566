package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavVader123/ADS-set/internal/errs"
)

func intCmp(a, b int) int { return a - b }

func collect[K any](t *Tree[K]) []K {
	var out []K
	for it := t.Begin(); it.Valid(); it = it.Next() {
		out = append(out, it.Key())
	}
	return out
}

// checkInvariants re-verifies the whole tree when ADSSET_INVARIANTS is set,
// failing the test immediately if a mutation left it inconsistent. Off by
// default since a Verify walk is O(n) against an O(log n) mutation.
func checkInvariants[K any](t *testing.T, tr *Tree[K], op string) {
	t.Helper()
	if !errs.Enabled {
		return
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("invariant violated after %s: %v", op, err)
	}
}

// insert wraps Tree.Insert with the errs.Enabled-gated re-verify.
func insert[K any](t *testing.T, tr *Tree[K], k K) (Iterator[K], bool) {
	t.Helper()
	it, inserted := tr.Insert(k)
	checkInvariants(t, tr, "Insert")
	return it, inserted
}

// erase wraps Tree.Erase with the errs.Enabled-gated re-verify.
func erase[K any](t *testing.T, tr *Tree[K], k K) int {
	t.Helper()
	n := tr.Erase(k)
	checkInvariants(t, tr, "Erase")
	return n
}

// TestInsertOneToSeven checks that, with N=3, inserting 1..7 in order
// produces a height-2 tree with a one-separator root.
func TestInsertOneToSeven(t *testing.T) {
	tr := New[int](intCmp, 3)
	for i := 1; i <= 7; i++ {
		_, inserted := insert(t, tr, i)
		require.True(t, inserted)
		require.NoError(t, tr.Verify())
	}
	require.Equal(t, 7, tr.Len())
	require.False(t, tr.root.leaf)
	require.Len(t, tr.root.keys, 1)
	require.Len(t, tr.root.children, 2)
	require.Equal(t, 3, tr.root.children[0].count())
	require.Equal(t, 4, tr.root.children[1].count())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tr))
}

// TestInsertFourteenEraseSeven checks that inserting 1..14 then erasing
// the first half in order leaves the second half intact and ordered.
func TestInsertFourteenEraseSeven(t *testing.T) {
	tr := New[int](intCmp, 3)
	for i := 1; i <= 14; i++ {
		insert(t, tr, i)
	}
	require.NoError(t, tr.Verify())
	for i := 1; i <= 7; i++ {
		require.Equal(t, 1, erase(t, tr, i))
		require.NoError(t, tr.Verify())
	}
	require.Equal(t, []int{8, 9, 10, 11, 12, 13, 14}, collect(tr))
}

// TestRandomInsertEraseEvens inserts a random permutation of 0..99, erases
// every even key, and checks that only the odd keys survive in order.
func TestRandomInsertEraseEvens(t *testing.T) {
	tr := New[int](intCmp, 3)
	rng := rand.New(rand.NewSource(12))
	perm := rng.Perm(100)
	for _, v := range perm {
		_, inserted := insert(t, tr, v)
		require.True(t, inserted)
	}
	require.NoError(t, tr.Verify())

	odds := 0
	for v := 0; v < 100; v++ {
		if v%2 == 0 {
			require.Equal(t, 1, erase(t, tr, v))
		} else {
			odds++
		}
	}
	require.NoError(t, tr.Verify())
	require.Equal(t, odds, tr.Len())

	var want []int
	for v := 1; v < 100; v += 2 {
		want = append(want, v)
	}
	require.Equal(t, want, collect(tr))
}

// TestDuplicateInsert checks that inserting an already-present key reports
// not-new and leaves the tree unchanged.
func TestDuplicateInsert(t *testing.T) {
	tr := New[int](intCmp, 3)
	_, inserted := insert(t, tr, 5)
	require.True(t, inserted)
	_, inserted = insert(t, tr, 5)
	require.False(t, inserted)
	require.Equal(t, 1, tr.Len())
	it := tr.Find(5)
	require.True(t, it.Valid())
	require.Equal(t, 5, it.Key())
}

// TestMissingErase checks that erasing an absent key on an empty tree is a
// no-op reporting zero removed.
func TestMissingErase(t *testing.T) {
	tr := New[int](intCmp, 3)
	require.Equal(t, 0, erase(t, tr, 42))
	require.True(t, tr.root.leaf)
	require.Equal(t, 0, tr.Len())
	require.True(t, tr.Begin().Equal(tr.End()))
}

// TestIterationTotality checks that a full forward iteration visits every
// stored key exactly once.
func TestIterationTotality(t *testing.T) {
	tr := New[int](intCmp, 3)
	for _, v := range []int{5, 1, 9, 3, 7, 2, 8, 4, 6} {
		insert(t, tr, v)
	}
	count := 0
	seen := map[int]bool{}
	for it := tr.Begin(); it.Valid(); it = it.Next() {
		require.False(t, seen[it.Key()], "key visited twice")
		seen[it.Key()] = true
		count++
	}
	require.Equal(t, tr.Len(), count)
}

// TestEmptyTreeBoundaries covers the remaining boundary behaviours of an
// empty tree.
func TestEmptyTreeBoundaries(t *testing.T) {
	tr := New[int](intCmp, 3)
	require.True(t, tr.Begin().Equal(tr.End()))
	require.False(t, tr.Find(1).Valid())
	require.False(t, tr.Contains(1))
}

// TestSingleKeyErase covers the boundary behaviour: erasing the only key
// returns the tree to the empty-leaf root.
func TestSingleKeyErase(t *testing.T) {
	tr := New[int](intCmp, 3)
	insert(t, tr, 1)
	require.Equal(t, 1, erase(t, tr, 1))
	require.True(t, tr.root.leaf)
	require.Equal(t, 0, len(tr.root.keys))
	require.True(t, tr.Begin().Equal(tr.End()))
}

// TestRootDemotion covers the boundary behaviour: an internal root with
// one child is replaced by that child after an underflowing erase.
func TestRootDemotion(t *testing.T) {
	tr := New[int](intCmp, 3)
	for i := 1; i <= 7; i++ {
		insert(t, tr, i)
	}
	require.False(t, tr.root.leaf)
	for i := 7; i >= 1; i-- {
		erase(t, tr, i)
		require.NoError(t, tr.Verify())
	}
	require.True(t, tr.root.leaf)
	require.Equal(t, 0, tr.Len())
}

// TestInsertEraseInverse checks that on a tree not containing k,
// insert(k) followed by erase(k) returns a key-equal tree.
func TestInsertEraseInverse(t *testing.T) {
	base := New[int](intCmp, 3)
	for i := 0; i < 50; i++ {
		insert(t, base, i*2)
	}
	before := collect(base)

	insert(t, base, 7)
	require.Equal(t, 1, erase(t, base, 7))
	require.Equal(t, before, collect(base))
}

// TestOrderInsensitiveInsert checks that inserting any permutation of the
// same distinct keys yields trees that compare equal under iteration.
func TestOrderInsensitiveInsert(t *testing.T) {
	keys := make([]int, 200)
	for i := range keys {
		keys[i] = i
	}

	a := New[int](intCmp, 3)
	for _, k := range keys {
		insert(t, a, k)
	}

	rng := rand.New(rand.NewSource(79))
	shuffled := append([]int(nil), keys...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	b := New[int](intCmp, 3)
	for _, k := range shuffled {
		insert(t, b, k)
	}

	require.Equal(t, collect(a), collect(b))
}

// TestIdempotentInsert checks that re-inserting a present key never
// changes the set of stored keys.
func TestIdempotentInsert(t *testing.T) {
	tr := New[int](intCmp, 3)
	for i := 0; i < 20; i++ {
		insert(t, tr, i)
	}
	snapshot := collect(tr)
	_, inserted := insert(t, tr, 10)
	require.False(t, inserted)
	require.Equal(t, snapshot, collect(tr))
}

// TestLargeSoak runs a larger sorted-insert-then-sorted-delete soak,
// checking the tracked length at every step and invariants every 37th
// insert and after each phase.
func TestLargeSoak(t *testing.T) {
	const count = 768
	tr := New[int](intCmp, 3)

	for i := 0; i < count; i++ {
		insert(t, tr, i)
		if i%37 == 0 {
			if err := tr.Verify(); err != nil {
				t.Fatalf("after insert %d: %v", i, err)
			}
		}
		if e := i + 1; e != tr.Len() {
			t.Fatalf("expected length %d, got %d", e, tr.Len())
		}
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("%v", err)
	}

	for i := 0; i < count; i++ {
		erase(t, tr, i)
		if e := count - (i + 1); e != tr.Len() {
			t.Fatalf("expected length %d, got %d", e, tr.Len())
		}
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("%v", err)
	}
	if tr.Len() != 0 {
		t.Fatalf("expected empty tree, got length %d", tr.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tr := New[int](intCmp, 3)
	for i := 0; i < 30; i++ {
		insert(t, tr, i)
	}
	clone := tr.Clone()
	require.NoError(t, clone.Verify())
	require.Equal(t, collect(tr), collect(clone))

	insert(t, clone, 1000)
	require.NotEqual(t, collect(tr), collect(clone))
	require.False(t, tr.Contains(1000))
}

func TestSwap(t *testing.T) {
	a := New[int](intCmp, 3)
	b := New[int](intCmp, 3)
	for i := 0; i < 10; i++ {
		insert(t, a, i)
	}
	for i := 100; i < 105; i++ {
		insert(t, b, i)
	}
	a.Swap(b)
	require.Equal(t, 5, a.Len())
	require.Equal(t, 10, b.Len())
	require.True(t, a.Contains(100))
	require.True(t, b.Contains(0))
}

// TestNewRejectsSubOneOrder checks that New asserts order >= 1 rather than
// accepting a degenerate tree.
func TestNewRejectsSubOneOrder(t *testing.T) {
	require.Panics(t, func() { New[int](intCmp, 0) })
}

// TestKeyOnEndIteratorPanics checks that dereferencing the end iterator
// trips the Iterator.Key assertion rather than indexing past the leaf.
func TestKeyOnEndIteratorPanics(t *testing.T) {
	tr := New[int](intCmp, 3)
	insert(t, tr, 1)
	require.Panics(t, func() { tr.End().Key() })
}

func TestEqual(t *testing.T) {
	a := New[int](intCmp, 3)
	b := New[int](intCmp, 3)
	for _, v := range []int{3, 1, 2} {
		insert(t, a, v)
		insert(t, b, v)
	}
	eq := func(x, y int) bool { return x == y }
	require.True(t, a.Equal(b, eq))
	insert(t, b, 4)
	require.False(t, a.Equal(b, eq))
}
