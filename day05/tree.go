package day05

// Span is an inclusive ID range.
type Span struct {
	Lo uint64
	Hi uint64
}

// Size returns the number of IDs the span covers.
func (s Span) Size() uint64 {
	return s.Hi - s.Lo + 1
}

// overlaps reports whether the spans touch or intersect.
func (s Span) overlaps(o Span) bool {
	return o.Hi >= s.Lo && s.Hi >= o.Lo
}

// fuse returns the union of two overlapping spans.
func (s Span) fuse(o Span) Span {
	return Span{Lo: min(s.Lo, o.Lo), Hi: max(s.Hi, o.Hi)}
}

// Tree is an interval-fusion tree over disjoint spans.
// The zero value is an empty tree ready for use.
type Tree struct {
	root *node
}

// node is a BST node; left holds strictly smaller spans, right strictly
// larger ones.
type node struct {
	span  Span
	left  *node
	right *node
}

// Insert adds a span, fusing it with any overlapping node.
func (t *Tree) Insert(s Span) {
	t.root = insert(t.root, s)
}

// Contains reports whether id falls inside some stored span.
func (t *Tree) Contains(id uint64) bool {
	for n := t.root; n != nil; {
		switch {
		case id < n.span.Lo:
			n = n.left
		case id > n.span.Hi:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Size returns the total number of IDs covered by the tree.
func (t *Tree) Size() uint64 {
	return size(t.root)
}

// insert descends to the slot for s. On overlap the node absorbs s and then
// rebalances: children that now overlap the widened span are fused in and
// their far subtree spliced up, keeping spans disjoint.
func insert(n *node, s Span) *node {
	if n == nil {
		return &node{span: s}
	}

	switch {
	case s.Hi < n.span.Lo:
		n.left = insert(n.left, s)
	case n.span.Hi < s.Lo:
		n.right = insert(n.right, s)
	default:
		n.span = n.span.fuse(s)
		n.rebalance()
	}

	return n
}

// rebalance swallows children overlapping the (possibly widened) node span.
// Only the outer subtree of a swallowed child can still overlap, so walking
// one spine per side is enough.
func (n *node) rebalance() {
	for n.left != nil && n.left.span.overlaps(n.span) {
		n.span = n.span.fuse(n.left.span)
		n.left = n.left.left
	}
	for n.right != nil && n.right.span.overlaps(n.span) {
		n.span = n.span.fuse(n.right.span)
		n.right = n.right.right
	}
}

// size sums span sizes over the subtree.
func size(n *node) uint64 {
	if n == nil {
		return 0
	}

	return n.span.Size() + size(n.left) + size(n.right)
}
