package Trees

import (
	"fmt"
	"iter"
	"strings"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

// balancer is the balancing policy of a tree. The engine in tree does the
// comparator driven descent, linking, splicing and rotations; the policy only
// restores its own invariants afterward using the rotations of tree.
type balancer[T any] interface {
	// duplicates reports whether equal values are stored as separate nodes.
	// Duplicates go to the left subtree of an equal node.
	duplicates() bool
	// inserted is called with the leaf that was just linked.
	inserted(u *tree[T], n *node[T])
	// removed is called with the node that moved into the vacated position,
	// possibly nilPtr with its p set, and whether the node taken out of the
	// structure was black.
	removed(u *tree[T], x *node[T], black bool)
	// corrupt checks the policy's own invariants. Ordering and links are
	// already checked by the engine.
	corrupt(u *tree[T]) bool
	// format a node for String.
	format(n *node[T]) string
	name() string
}

// tree holds the state shared by BST and RBTree.
type tree[T any] struct {
	root, nilPtr *node[T]
	sz           uint
	cmp          Comparator[T]
	order        Order
	nilable      bool //whether T can hold nil, values are checked only if so.
	bal          balancer[T]
}

func newTree[T any](cmp Comparator[T], order Order, bal balancer[T]) tree[T] {
	if cmp == nil {
		panic(NilComparatorError{})
	}
	if order != Descending {
		order = Ascending
	}
	z := newSentinel[T]()
	return tree[T]{root: z, nilPtr: z, cmp: cmp, order: order, nilable: Go_Collections.CanBeNil[T](), bal: bal}
}

// compare a and b according to the order of the tree. The result is normalized
// to -1, 0, 1 so reversing it can't overflow.
func (u *tree[T]) compare(a, b T) int {
	if c := u.cmp(a, b); c < 0 {
		return -int(u.order)
	} else if c > 0 {
		return int(u.order)
	}
	return 0
}

func (u *tree[T]) check(v T, op string) {
	if u.nilable && Go_Collections.IsNil(v) {
		panic(NilValueError{op})
	}
}

// find the first node on the search path of v holding a value equal to v. Returns nilPtr if there's none.
// Time: O(D); Space: O(1)
func (u *tree[T]) find(v T) *node[T] {
	cur := u.root
	for cur != u.nilPtr {
		if c := u.compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// link v as a new red leaf. Returns nil if an equal value is present and the policy doesn't allow duplicates.
// Time: O(D); Space: O(1)
func (u *tree[T]) link(v T) *node[T] {
	p, cur, c := u.nilPtr, u.root, 0
	dup := u.bal.duplicates()
	for cur != u.nilPtr {
		p = cur
		if c = u.compare(v, cur.v); c < 0 || c == 0 && dup {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return nil
		}
	}
	n := &node[T]{v: v, p: p, l: u.nilPtr, r: u.nilPtr}
	if p == u.nilPtr {
		u.root = n
	} else if c <= 0 {
		p.l = n
	} else {
		p.r = n
	}
	u.sz++
	return n
}

// unlink z from the tree. A node with two children is replaced by its in-order
// successor y: y is spliced out of the right subtree, takes z's position, z's
// left subtree and z's colour. Returns the node x that moved into the position
// the removed colour was taken from, and whether that colour was black. x may be
// nilPtr with x.p set to the parent of the vacated position.
// Time: O(D); Space: O(1)
func (u *tree[T]) unlink(z *node[T]) (x *node[T], black bool) {
	black = z.black
	if z.l == u.nilPtr {
		x = z.r
		u.transplant(z, z.r)
	} else if z.r == u.nilPtr {
		x = z.l
		u.transplant(z, z.l)
	} else {
		y := u.minimum(z.r)
		black = y.black
		if x = y.r; y.p == z {
			x.p = y
		} else {
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.black = z.black
	}
	z.p, z.l, z.r = nil, nil, nil
	u.sz--
	return
}

// Insert [Tree.Insert]
// Panics with NilValueError if v is nil.
// Time: O(D)
func (u *tree[T]) Insert(v T) bool {
	u.check(v, "Insert")
	if n := u.link(v); n != nil {
		u.bal.inserted(u, n)
		return true
	}
	return false
}

// Remove [Tree.Remove]
// Panics with NilValueError if v is nil.
// Time: O(D)
func (u *tree[T]) Remove(v T) bool {
	u.check(v, "Remove")
	z := u.find(v)
	if z == u.nilPtr {
		return false
	}
	x, black := u.unlink(z)
	u.bal.removed(u, x, black)
	u.nilPtr.p = u.nilPtr
	return true
}

// Has [Tree.Has]
// Panics with NilValueError if v is nil.
// Time: O(D); Space: O(1)
func (u *tree[T]) Has(v T) bool {
	u.check(v, "Has")
	return u.find(v) != u.nilPtr
}

func (u *tree[T]) minimum(cur *node[T]) *node[T] {
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur
}

func (u *tree[T]) maximum(cur *node[T]) *node[T] {
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *tree[T]) Minimum() (T, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.v, false
	}
	return u.minimum(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *tree[T]) Maximum() (T, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.v, false
	}
	return u.maximum(u.root).v, true
}

// Min [Tree.Min]
func (u *tree[T]) Min() T {
	if v, ok := u.Minimum(); ok {
		return v
	}
	panic(EmptyTreeError{"Min"})
}

// Max [Tree.Max]
func (u *tree[T]) Max() T {
	if v, ok := u.Maximum(); ok {
		return v
	}
	panic(EmptyTreeError{"Max"})
}

// Predecessor [Tree.Predecessor]
// Panics with NilValueError if v is nil.
// Time: O(D); Space: O(1)
func (u *tree[T]) Predecessor(v T) (T, bool) {
	u.check(v, "Predecessor")
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.compare(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Panics with NilValueError if v is nil.
// Time: O(D); Space: O(1)
func (u *tree[T]) Successor(v T) (T, bool) {
	u.check(v, "Successor")
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.compare(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *tree[T]) Size() uint {
	return u.sz
}

// Clear [Tree.Clear]
// The nodes are dropped with the root, O(1).
func (u *tree[T]) Clear() {
	u.root, u.sz = u.nilPtr, 0
	u.nilPtr.p = u.nilPtr
}

// CopyTo [Tree.CopyTo]
// All Size() values are written to dst[at:at+Size()] and the number written is returned.
// Nothing is written if at is out of [0, len(dst)] or the remaining room is too small.
// Time: O(n)
func (u *tree[T]) CopyTo(dst []T, at int) (int, error) {
	if at < 0 || at > len(dst) {
		return 0, IndexOutOfRangeError{at, len(dst)}
	}
	if room := len(dst) - at; uint(room) < u.sz {
		return 0, ShortBufferError{int(u.sz), room}
	}
	i := at
	for v := range u.All(InOrder) {
		dst[i] = v
		i++
	}
	return i - at, nil
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *tree[T]) InOrder() func() (T, bool) {
	return u.Iterate(InOrder).Next
}

// Iterate [Tree.Iterate]
// An unknown Traversal is treated as InOrder.
func (u *tree[T]) Iterate(trav Traversal) *Iterator[T] {
	it := &Iterator[T]{u: u, trav: trav}
	it.Reset()
	return it
}

// All [Tree.All]
// Every range over the returned sequence starts a new traversal.
func (u *tree[T]) All(trav Traversal) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := u.Iterate(trav)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// corrupt reports whether the subtree rooting at c breaks ordering or parent links.
// Every value in it must be greater than lo.v and at most hi.v, or less than hi.v
// when duplicates aren't allowed; nilPtr bounds are open. Recursive.
func (u *tree[T]) corrupt(c, lo, hi *node[T], cnt *uint) bool {
	if c == u.nilPtr {
		return false
	}
	*cnt++
	if lo != u.nilPtr && u.compare(c.v, lo.v) <= 0 {
		return true
	}
	if hi != u.nilPtr {
		if d := u.compare(c.v, hi.v); d > 0 || d == 0 && !u.bal.duplicates() {
			return true
		}
	}
	if c.l != u.nilPtr && c.l.p != c || c.r != u.nilPtr && c.r.p != c {
		return true
	}
	return u.corrupt(c.l, lo, c, cnt) || u.corrupt(c.r, c, hi, cnt)
}

// Corrupt [Tree.Corrupt]
// Checks ordering, parent back references, the size, and the invariants of the balancing policy.
// Time: O(n); Space: O(D)
func (u *tree[T]) Corrupt() bool {
	if u.root != u.nilPtr && u.root.p != u.nilPtr {
		return true
	}
	var cnt uint
	if u.corrupt(u.root, u.nilPtr, u.nilPtr, &cnt) || cnt != u.sz {
		return true
	}
	return u.bal.corrupt(u)
}

func (u *tree[T]) minDepth(c *node[T]) uint {
	if c == u.nilPtr {
		return 0
	}
	return 1 + min(u.minDepth(c.l), u.minDepth(c.r))
}

// MinDepth is the number of nodes on the shortest path from the root to an absent child. Recursive.
func (u *tree[T]) MinDepth() uint {
	return u.minDepth(u.root)
}

func (u *tree[T]) maxDepth(c *node[T]) uint {
	if c == u.nilPtr {
		return 0
	}
	return 1 + max(u.maxDepth(c.l), u.maxDepth(c.r))
}

// MaxDepth is the number of nodes on the longest path from the root to a leaf. Recursive.
func (u *tree[T]) MaxDepth() uint {
	return u.maxDepth(u.root)
}

func (u *tree[T]) output(sb *strings.Builder, c *node[T], prefix string, tail bool) {
	if c.r != u.nilPtr {
		u.output(sb, c.r, prefix+branch(tail, "│   ", "    "), false)
	}
	sb.WriteString(prefix)
	sb.WriteString(branch(tail, "└── ", "┌── "))
	sb.WriteString(u.bal.format(c))
	sb.WriteByte('\n')
	if c.l != u.nilPtr {
		u.output(sb, c.l, prefix+branch(tail, "    ", "│   "), true)
	}
}

func branch(tail bool, a, b string) string {
	if tail {
		return a
	}
	return b
}

// String draws the tree sideways, the right subtree above its parent. Recursive.
func (u *tree[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s[%d]\n", u.bal.name(), u.sz)
	if u.root != u.nilPtr {
		u.output(&sb, u.root, "", true)
	}
	return sb.String()
}
