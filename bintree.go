package lzss

// The match finder maintains one binary search tree for every
// possible first byte. Each tree orders the window positions whose
// run starts with that byte lexicographically over the next
// MaxMatchLength bytes. A position owns at most one node at any time;
// it is removed before the window byte under it is overwritten, so
// the first byte of a live node never changes.

const (
	// null marks an empty child slot or an absent node.
	null uint32 = 1<<32 - 1
	// rootNode in the parent field marks a node that hangs directly
	// off its first-byte root.
	rootNode uint32 = 1<<32 - 2
)

// node keeps the tree linkage for one window position.
type node struct {
	l, r, p uint32
}

// match reports the best match seen while inserting a position: pos
// is a window position, n the number of matching bytes. The zero
// value means no match.
type match struct {
	pos int
	n   int
}

// binTree is an arena of tree nodes, one slot per window position,
// plus the 256 first-byte roots. The trees are not rebalanced; depth
// is worst-case linear in the window size, which is the behavior of
// the classical algorithm.
type binTree struct {
	win   *window
	roots [256]uint32
	node  []node
	max   int // MaxMatchLength
}

// newBinTree creates a match finder over the given window.
func newBinTree(win *window, maxMatchLength int) *binTree {
	t := &binTree{
		win:  win,
		node: make([]node, win.size),
		max:  maxMatchLength,
	}
	t.reset()
	return t
}

// reset empties all trees. It must run before the first insert of a
// compression session.
func (t *binTree) reset() {
	for i := range t.roots {
		t.roots[i] = null
	}
	for i := range t.node {
		t.node[i].p = null
	}
}

// link returns the pointer that refers to node v: the child slot of
// its parent, or the root slot of its tree if v hangs off the root.
// The node must be present in a tree.
func (t *binTree) link(v int) *uint32 {
	p := t.node[v].p
	if p == rootNode {
		return &t.roots[t.win.at(v)]
	}
	pn := &t.node[p]
	if pn.r == uint32(v) {
		return &pn.r
	}
	return &pn.l
}

// insert adds window position r to the tree selected by its first
// byte and returns the longest match encountered on the way down. If
// the walk hits a node whose run equals r's for the full match
// length, r is spliced into that node's place and the older position
// leaves the tree, which bounds tree growth when long runs repeat.
func (t *binTree) insert(r int) match {
	var m match
	buf := t.win.data
	vn := &t.node[r]
	vn.l, vn.r = null, null
	c := buf[r]
	if t.roots[c] == null {
		t.roots[c] = uint32(r)
		vn.p = rootNode
		return m
	}
	p := int(t.roots[c])
	for {
		// The first byte is equal by tree choice; compare the rest.
		i := 1
		cmp := 0
		for i < t.max {
			cmp = int(buf[r+i]) - int(buf[p+i])
			if cmp != 0 {
				break
			}
			i++
		}
		if i > m.n {
			m.pos, m.n = p, i
			if i >= t.max {
				t.replace(r, p)
				return m
			}
		}
		pn := &t.node[p]
		if cmp >= 0 {
			if pn.r == null {
				pn.r = uint32(r)
				vn.p = uint32(p)
				return m
			}
			p = int(pn.r)
		} else {
			if pn.l == null {
				pn.l = uint32(r)
				vn.p = uint32(p)
				return m
			}
			p = int(pn.l)
		}
	}
}

// replace splices r into the tree in place of p. r inherits p's
// children and parent link; p is fully detached.
func (t *binTree) replace(r, p int) {
	ptr := t.link(p)
	rn, pn := &t.node[r], &t.node[p]
	rn.p, rn.l, rn.r = pn.p, pn.l, pn.r
	if pn.l != null {
		t.node[pn.l].p = uint32(r)
	}
	if pn.r != null {
		t.node[pn.r].p = uint32(r)
	}
	*ptr = uint32(r)
	pn.p = null
}

// remove deletes window position p from its tree. Removing an absent
// position is a no-op.
func (t *binTree) remove(p int) {
	pn := &t.node[p]
	if pn.p == null {
		return
	}
	ptr := t.link(p)
	var q uint32
	switch {
	case pn.r == null:
		q = pn.l
	case pn.l == null:
		q = pn.r
	default:
		// Move the in-order predecessor of p, the rightmost
		// descendant of its left child, into p's place.
		q = pn.l
		if t.node[q].r != null {
			for t.node[q].r != null {
				q = t.node[q].r
			}
			qn := &t.node[q]
			t.node[qn.p].r = qn.l
			if qn.l != null {
				t.node[qn.l].p = qn.p
			}
			qn.l = pn.l
			t.node[pn.l].p = q
		}
		t.node[q].r = pn.r
		t.node[pn.r].p = q
	}
	*ptr = q
	if q != null {
		t.node[q].p = pn.p
	}
	pn.p = null
}
