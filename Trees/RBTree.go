package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree with no repeated values: inserting a value that
// is already present does nothing. It keeps
//  1. the root black,
//  2. no red node with a red child,
//  3. the same number of black nodes on every path from a node to an absent child,
//
// with absent children counted as black. The depth D is at most 2*log2(n+1).
type RBTree[T any] struct {
	tree[T]
}

type redBlack[T any] struct{}

func (redBlack[T]) duplicates() bool { return false }

// inserted restores the red-black rules after n was linked as a red leaf,
// walking up while n and its parent are both red.
// Time: O(log n), at most 2 rotations.
func (redBlack[T]) inserted(u *tree[T], n *node[T]) {
	for n != u.root && !n.p.black {
		p := n.p
		g := p.p
		if g == u.nilPtr {
			panic(CorruptTreeError{"red node without a grandparent"})
		}
		if p == g.l {
			if y := g.r; !y.black {
				//uncle red: push the black down from g.
				p.black, y.black, g.black = true, true, false
				n = g
				continue
			}
			if n == p.r {
				//inner grandchild: turn it into the outer one.
				n = p
				u.rotateLeft(n)
				p = n.p
			}
			p.black, g.black = true, false
			u.rotateRight(g)
		} else {
			if y := g.l; !y.black {
				p.black, y.black, g.black = true, true, false
				n = g
				continue
			}
			if n == p.l {
				n = p
				u.rotateRight(n)
				p = n.p
			}
			p.black, g.black = true, false
			u.rotateLeft(g)
		}
	}
	u.root.black = true
}

// removed restores the black heights after a black node was taken out above x.
// x carries an extra black that is moved up until it reaches a red node or the
// root, or is absorbed by rotations around its sibling w.
// Time: O(log n), at most 3 rotations.
func (redBlack[T]) removed(u *tree[T], x *node[T], black bool) {
	if !black {
		return
	}
	for x != u.root && x.black {
		if p := x.p; x == p.l {
			w := p.r
			if !w.black {
				w.black, p.black = true, false
				u.rotateLeft(p)
				w = p.r
			}
			if w.l.black && w.r.black {
				w.black = false
				x = p
				continue
			}
			if w.r.black {
				w.l.black, w.black = true, false
				u.rotateRight(w)
				w = p.r
			}
			w.black, p.black, w.r.black = p.black, true, true
			u.rotateLeft(p)
			x = u.root
		} else {
			w := p.l
			if !w.black {
				w.black, p.black = true, false
				u.rotateRight(p)
				w = p.l
			}
			if w.l.black && w.r.black {
				w.black = false
				x = p
				continue
			}
			if w.l.black {
				w.r.black, w.black = true, false
				u.rotateLeft(w)
				w = p.l
			}
			w.black, p.black, w.l.black = p.black, true, true
			u.rotateRight(p)
			x = u.root
		}
	}
	x.black = true
}

func (redBlack[T]) corrupt(u *tree[T]) bool {
	if !u.root.black || !u.nilPtr.black {
		return true
	}
	_, ok := blackHeight(u, u.root)
	return !ok
}

// blackHeight of the subtree rooting at c counting the absent children, false if
// the subtree has a red node with a red child or paths of different black heights. Recursive.
func blackHeight[T any](u *tree[T], c *node[T]) (uint, bool) {
	if c == u.nilPtr {
		return 1, true
	}
	if !c.black && (!c.l.black || !c.r.black) {
		return 0, false
	}
	l, okl := blackHeight(u, c.l)
	r, okr := blackHeight(u, c.r)
	if !okl || !okr || l != r {
		return 0, false
	}
	if c.black {
		l++
	}
	return l, true
}

func (redBlack[T]) format(n *node[T]) string {
	if n.black {
		return fmt.Sprint(n.v)
	}
	return fmt.Sprint(n.v, "(R)")
}

func (redBlack[T]) name() string { return "RBTree" }

// NewRBTree returns an empty ascending RBTree of an ordered type.
func NewRBTree[T constraints.Ordered]() *RBTree[T] {
	return MakeRBTree[T](Compare[T], Ascending)
}

// MakeRBTree returns an empty RBTree ordered by cmp in the given order. Any order other
// than Descending is Ascending. Panics with NilComparatorError if cmp is nil.
func MakeRBTree[T any](cmp Comparator[T], order Order) *RBTree[T] {
	return &RBTree[T]{newTree[T](cmp, order, redBlack[T]{})}
}

// BuildRBTree makes an RBTree and inserts the values of sli one at a time.
// Repeated values are stored once. Panics with EmptySliceError if sli is empty.
// Time: O(n*log n)
func BuildRBTree[T any](sli []T, cmp Comparator[T], order Order) *RBTree[T] {
	if len(sli) == 0 {
		panic(EmptySliceError{})
	}
	u := MakeRBTree[T](cmp, order)
	for _, v := range sli {
		u.Insert(v)
	}
	return u
}

// BlackHeight of the tree: the number of black nodes on any path from the root to an
// absent child, the absent child included. Returns 0 if the tree is Corrupt. Recursive.
func (u *RBTree[T]) BlackHeight() uint {
	h, _ := blackHeight(&u.tree, u.root)
	return h
}
