package tree

import "github.com/cockroachdb/errors"

// Verify walks the whole tree and checks its structural invariants: node
// fill, key ordering, uniform leaf depth, and separator routing. Intended
// for use from tests, not production code paths.
func (t *Tree[K]) Verify() error {
	depth := -1
	if err := t.verifyNode(t.root, true, &depth, 0); err != nil {
		return err
	}
	return t.verifyChain()
}

func (t *Tree[K]) verifyNode(n *node[K], isRoot bool, leafDepth *int, depth int) error {
	// Fill bounds, except for the root, which is exempt.
	if !isRoot && (len(n.keys) < t.order || len(n.keys) > 2*t.order) {
		return errors.Newf("non-root node has %d keys, want [%d, %d]",
			len(n.keys), t.order, 2*t.order)
	}
	for i := 1; i < len(n.keys); i++ {
		if t.cmp(n.keys[i-1], n.keys[i]) >= 0 {
			return errors.Newf("ordering violated: keys[%d] >= keys[%d]", i-1, i)
		}
	}

	if n.leaf {
		// Every leaf must sit at the same depth.
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return errors.Newf("leaf at depth %d, want %d", depth, *leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return errors.Newf("internal node has %d children and %d separators, want children = separators+1",
			len(n.children), len(n.keys))
	}
	for i, child := range n.children {
		if err := t.verifyNode(child, false, leafDepth, depth+1); err != nil {
			return err
		}
		// Routing: every key under children[i] is < keys[i] (if any); every
		// key under children[i+1] is >= keys[i] (if any).
		if i < len(n.keys) {
			if mx, ok := maxKey(child); ok && t.cmp(mx, n.keys[i]) >= 0 {
				return errors.Newf("max(subtree(children[%d]))=%v >= separator %v", i, mx, n.keys[i])
			}
		}
		if i > 0 {
			if mn, ok := minKey(child); ok && t.cmp(mn, n.keys[i-1]) < 0 {
				return errors.Newf("min(subtree(children[%d]))=%v < separator %v", i, mn, n.keys[i-1])
			}
		}
	}
	return nil
}

func minKey[K any](n *node[K]) (K, bool) {
	for !n.leaf {
		n = n.children[0]
	}
	var zero K
	if len(n.keys) == 0 {
		return zero, false
	}
	return n.keys[0], true
}

func maxKey[K any](n *node[K]) (K, bool) {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	var zero K
	if len(n.keys) == 0 {
		return zero, false
	}
	return n.keys[len(n.keys)-1], true
}

// verifyChain walks the leaf chain from the leftmost leaf, checking that
// keys are strictly increasing across leaf boundaries, that the chain's
// total length matches the tracked size, and that prev/next links agree
// with each other in both directions.
func (t *Tree[K]) verifyChain() error {
	count := 0
	var prev *node[K]
	var prevKey K
	havePrevKey := false

	n := t.leftmost
	for n != nil {
		if n.prev != prev {
			return errors.Newf("leaf's prev does not match actual predecessor")
		}
		for _, k := range n.keys {
			if havePrevKey && t.cmp(prevKey, k) >= 0 {
				return errors.Newf("chain not strictly increasing")
			}
			prevKey, havePrevKey = k, true
			count++
		}
		prev = n
		n = n.next
	}
	if count != t.size {
		return errors.Newf("chain length %d != size %d", count, t.size)
	}
	return nil
}
