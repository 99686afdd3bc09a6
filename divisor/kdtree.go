// SPDX-License-Identifier: MIT

package divisor

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-groebner/groebner/monomial"
)

// leafEntry pairs a stored entry with its own tombstone: a leaf holds
// up to leafCap of these, so removal marks one entry rather than the
// whole node.
type leafEntry struct {
	entry entryWithMask
	tomb  bool
}

// kdNode is either a leaf (holding up to leafCap entries) or an
// internal split on one exponent coordinate. Layout is a flat slice
// addressed by index rather than pointers, adapted from gridgraph's
// static quad-partition layout (splitVar/splitValue/children stored
// alongside the node rather than boxed).
//
// commonMask is the bitwise AND of every mask ever inserted beneath
// this node; unionMask is the bitwise OR. Removing an entry never
// updates either: both remain valid (if less precise) supersets/
// subsets of the true aggregate over live entries, since dropping one
// operand from an AND can only grow the true intersection and
// dropping one from an OR can only shrink the true union — the stored
// values stay safe bounds for pruning, just occasionally conservative.
type kdNode struct {
	leaf       bool
	entries    []leafEntry // valid when leaf
	commonMask *bitset.BitSet
	unionMask  *bitset.BitSet
	splitVar   int
	splitVal   int32
	left       int // index into tree.nodes, -1 if none
	right      int
}

// KdTree is a static-layout k-d tree over exponent vectors, rebuilt in
// full once the tombstoned entries exceed rebuildRatio times the live
// entries plus minRebuild, adapted from gridgraph's rebuild/expand threshold policy (spec §4.3
// "rebuild trigger"). Each leaf holds up to leafCap entries before
// splitting; each node carries a commonMask/unionMask pair so a query
// can skip an entire subtree instead of visiting every leaf.
type KdTree struct {
	nodes        []kdNode
	root         int
	n            int // arity, i.e. number of exponent coordinates
	leafCap      int
	live         int
	tomb         int
	rebuildRatio float64
	minRebuild   int
}

const (
	defaultRebuildRatio = 0.5
	defaultMinRebuild   = 32
	defaultLeafCapacity = 8
)

// NewKdTree constructs an empty tree over monomials of arity n, using
// the default leaf capacity.
func NewKdTree(n int) *KdTree {
	return NewKdTreeWithLeafCapacity(n, defaultLeafCapacity)
}

// NewKdTreeWithLeafCapacity constructs an empty tree with a caller-
// chosen leaf capacity, per spec §4.3's "configurable, default 8".
func NewKdTreeWithLeafCapacity(n, leafCap int) *KdTree {
	if leafCap < 1 {
		leafCap = defaultLeafCapacity
	}
	return &KdTree{root: -1, n: n, leafCap: leafCap, rebuildRatio: defaultRebuildRatio, minRebuild: defaultMinRebuild}
}

func (t *KdTree) Insert(m *monomial.Mono, genIdx int) {
	e := entryWithMask{Entry: Entry{Mono: m, GenIdx: genIdx}, mask: maskOf(m)}
	t.insertNoRebuild(e)
	t.maybeRebuild()
}

func (t *KdTree) insertNoRebuild(e entryWithMask) {
	if t.root == -1 {
		t.root = t.newEmptyLeaf()
	}
	t.insertAt(t.root, e, 0)
	t.live++
}

func (t *KdTree) newEmptyLeaf() int {
	t.nodes = append(t.nodes, kdNode{leaf: true, left: -1, right: -1})
	return len(t.nodes) - 1
}

// updateMasks folds e's mask into nd's running AND/OR aggregates.
func updateMasks(nd *kdNode, mask *bitset.BitSet) {
	if nd.commonMask == nil {
		nd.commonMask = mask.Clone()
	} else {
		nd.commonMask.InPlaceIntersection(mask)
	}
	if nd.unionMask == nil {
		nd.unionMask = mask.Clone()
	} else {
		nd.unionMask.InPlaceUnion(mask)
	}
}

// insertAt descends splitting on coordinate depth%n, appending to a
// leaf until it holds leafCap entries and only then splitting it.
//
// Every mutation here re-indexes t.nodes[idx] fresh rather than
// holding a *kdNode across a call that might append to t.nodes:
// append can reallocate the backing array, and a pointer taken before
// that reallocation silently writes into the orphaned old array.
func (t *KdTree) insertAt(idx int, e entryWithMask, depth int) {
	updateMasks(&t.nodes[idx], e.mask)
	if !t.nodes[idx].leaf {
		splitVar := t.nodes[idx].splitVar
		splitVal := t.nodes[idx].splitVal
		if e.Mono.Exponent(splitVar) <= splitVal {
			if t.nodes[idx].left == -1 {
				t.nodes[idx].left = t.newEmptyLeaf()
			}
			t.insertAt(t.nodes[idx].left, e, depth+1)
		} else {
			if t.nodes[idx].right == -1 {
				t.nodes[idx].right = t.newEmptyLeaf()
			}
			t.insertAt(t.nodes[idx].right, e, depth+1)
		}
		return
	}
	if len(t.nodes[idx].entries) < t.leafCap {
		t.nodes[idx].entries = append(t.nodes[idx].entries, leafEntry{entry: e})
		return
	}
	t.splitLeaf(idx, e, depth)
}

// splitLeaf turns a full leaf into an internal split node, dividing
// its leafCap+1 entries (including the one that triggered the split)
// between two fresh leaves by whichever coordinate depth%n picks,
// using that coordinate's median exponent so the split isn't
// pathologically one-sided when it doesn't have to be.
func (t *KdTree) splitLeaf(idx int, extra entryWithMask, depth int) {
	entries := append(append([]leafEntry{}, t.nodes[idx].entries...), leafEntry{entry: extra})
	splitVar := depth % t.n
	splitVal := medianExponent(entries, splitVar)

	t.nodes[idx].leaf = false
	t.nodes[idx].entries = nil
	t.nodes[idx].splitVar = splitVar
	t.nodes[idx].splitVal = splitVal
	t.nodes[idx].left = t.newEmptyLeaf()
	t.nodes[idx].right = t.newEmptyLeaf()

	for _, le := range entries {
		if le.tomb {
			continue
		}
		if le.entry.Mono.Exponent(splitVar) <= splitVal {
			t.insertAt(t.nodes[idx].left, le.entry, depth+1)
		} else {
			t.insertAt(t.nodes[idx].right, le.entry, depth+1)
		}
	}
}

func medianExponent(entries []leafEntry, v int) int32 {
	exps := make([]int32, 0, len(entries))
	for _, e := range entries {
		if !e.tomb {
			exps = append(exps, e.entry.Mono.Exponent(v))
		}
	}
	if len(exps) == 0 {
		return 0
	}
	sort.Slice(exps, func(i, j int) bool { return exps[i] < exps[j] })
	return exps[len(exps)/2]
}

// walk visits every live leaf entry in the subtree rooted at idx,
// skipping any subtree prune reports as unreachable, and stops as
// soon as visit returns false. It returns false once the caller has
// asked to stop, so a caller iterating left-then-right subtrees knows
// to skip the remainder.
func (t *KdTree) walk(idx int, prune func(nd *kdNode) bool, visit func(le *leafEntry) bool) bool {
	if idx == -1 {
		return true
	}
	nd := &t.nodes[idx]
	if prune != nil && prune(nd) {
		return true
	}
	if nd.leaf {
		for i := range nd.entries {
			if nd.entries[i].tomb {
				continue
			}
			if !visit(&nd.entries[i]) {
				return false
			}
		}
		return true
	}
	if !t.walk(nd.left, prune, visit) {
		return false
	}
	return t.walk(nd.right, prune, visit)
}

// pruneNotDivisorOf skips subtrees whose commonMask already proves no
// entry there can divide a monomial with mask mMask: commonMask is a
// subset of every live entry's own mask, so if it isn't a subset of
// mMask, neither is any entry's mask.
func pruneNotDivisorOf(mMask *bitset.BitSet) func(nd *kdNode) bool {
	return func(nd *kdNode) bool {
		return nd.commonMask != nil && !mMask.IsSuperSet(nd.commonMask)
	}
}

// pruneNotMultipleOf skips subtrees whose unionMask already proves no
// entry there can be a multiple of a monomial with mask mMask:
// unionMask is a superset of every live entry's own mask, so if mMask
// isn't a subset of it, mMask can't be a subset of any entry's mask
// either.
func pruneNotMultipleOf(mMask *bitset.BitSet) func(nd *kdNode) bool {
	return func(nd *kdNode) bool {
		return nd.unionMask != nil && !nd.unionMask.IsSuperSet(mMask)
	}
}

func (t *KdTree) RemoveByMono(m *monomial.Mono) {
	mMask := maskOf(m)
	prune := func(nd *kdNode) bool {
		return pruneNotDivisorOf(mMask)(nd) || pruneNotMultipleOf(mMask)(nd)
	}
	t.walk(t.root, prune, func(le *leafEntry) bool {
		if le.entry.Mono.Equal(m) {
			le.tomb = true
			t.tomb++
			t.live--
			return false
		}
		return true
	})
	t.maybeRebuild()
}

func (t *KdTree) RemoveMultiples(m *monomial.Mono) {
	mMask := maskOf(m)
	t.walk(t.root, pruneNotMultipleOf(mMask), func(le *leafEntry) bool {
		if !maskRejects(mMask, le.entry.mask) && monomial.Divides(m, le.entry.Mono) {
			le.tomb = true
			t.tomb++
			t.live--
		}
		return true
	})
	t.maybeRebuild()
}

func (t *KdTree) FindAnyDivisor(m *monomial.Mono) (Entry, bool) {
	mMask := maskOf(m)
	var found Entry
	ok := false
	t.walk(t.root, pruneNotDivisorOf(mMask), func(le *leafEntry) bool {
		if !maskRejects(le.entry.mask, mMask) && monomial.Divides(le.entry.Mono, m) {
			found, ok = le.entry.Entry, true
			return false
		}
		return true
	})
	return found, ok
}

func (t *KdTree) ForEachDivisor(m *monomial.Mono, sink Sink) {
	mMask := maskOf(m)
	t.walk(t.root, pruneNotDivisorOf(mMask), func(le *leafEntry) bool {
		if maskRejects(le.entry.mask, mMask) || !monomial.Divides(le.entry.Mono, m) {
			return true
		}
		return sink(le.entry.Entry)
	})
}

func (t *KdTree) ForEachMultiple(m *monomial.Mono, sink Sink) {
	mMask := maskOf(m)
	t.walk(t.root, pruneNotMultipleOf(mMask), func(le *leafEntry) bool {
		if maskRejects(mMask, le.entry.mask) || !monomial.Divides(m, le.entry.Mono) {
			return true
		}
		return sink(le.entry.Entry)
	})
}

func (t *KdTree) Len() int { return t.live }

// maybeRebuild rebuilds the tree from its live entries once the
// tombstone count crosses the configured threshold, per spec §4.3's
// rebuild trigger.
func (t *KdTree) maybeRebuild() {
	if float64(t.tomb) <= t.rebuildRatio*float64(t.live)+float64(t.minRebuild) {
		return
	}
	if t.tomb == 0 {
		return
	}
	live := make([]entryWithMask, 0, t.live)
	t.walk(t.root, nil, func(le *leafEntry) bool {
		live = append(live, le.entry)
		return true
	})
	t.nodes = t.nodes[:0]
	t.root = -1
	t.tomb = 0
	t.live = 0
	for _, e := range live {
		t.insertNoRebuild(e)
	}
}
