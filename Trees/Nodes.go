package Trees

// A node in the trees. l and r own the children, p is only a back reference.
// A child or parent equal to the tree's nilPtr is absent. nilPtr is black,
// which makes absent children black as the red-black rules require. Its p is
// borrowed during removal to walk up from an absent child.
// black is ignored by BST.
type node[T any] struct {
	v       T
	p, l, r *node[T]
	black   bool
}

// newSentinel returns a nilPtr: black, linked to itself.
func newSentinel[T any]() *node[T] {
	z := &node[T]{black: true}
	z.p, z.l, z.r = z, z, z
	return z
}

// transplant replaces the subtree rooting at a with the one rooting at b in a's parent.
// b may be nilPtr, in which case nilPtr.p is set to a.p.
// Time: O(1); Space: O(1)
func (u *tree[T]) transplant(a, b *node[T]) {
	if p := a.p; p == u.nilPtr {
		u.root = b
	} else if a == p.l {
		p.l = b
	} else if a == p.r {
		p.r = b
	} else {
		panic(CorruptTreeError{"node is not a child of its parent"})
	}
	b.p = a.p
}

// rotateLeft performs a left rotation on n: the right child of n takes its place
// and n becomes its left child. The in-order sequence doesn't change.
// Time: O(1); Space: O(1)
func (u *tree[T]) rotateLeft(n *node[T]) {
	c := n.r
	if c == u.nilPtr {
		panic(CorruptTreeError{"rotateLeft without a right child"})
	}
	if n.r = c.l; c.l != u.nilPtr {
		c.l.p = n
	}
	u.transplant(n, c)
	c.l = n
	n.p = c
}

// rotateRight performs a right rotation on n: the left child of n takes its place
// and n becomes its right child.
// Time: O(1); Space: O(1)
func (u *tree[T]) rotateRight(n *node[T]) {
	c := n.l
	if c == u.nilPtr {
		panic(CorruptTreeError{"rotateRight without a left child"})
	}
	if n.l = c.r; c.r != u.nilPtr {
		c.r.p = n
	}
	u.transplant(n, c)
	c.r = n
	n.p = c
}
