package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree. Equal values are kept as separate
// entries: a duplicate goes to the left subtree of the equal node, so every
// left subtree holds values less or equal to its parent and every right subtree
// values greater than it.
// No rebalancing is done. The depth D is O(log n) on average for random input
// but O(n) for sorted input.
type BST[T any] struct {
	tree[T]
}

type unbalanced[T any] struct{}

func (unbalanced[T]) duplicates() bool { return true }
func (unbalanced[T]) inserted(*tree[T], *node[T]) {}
func (unbalanced[T]) removed(*tree[T], *node[T], bool) {}
func (unbalanced[T]) corrupt(*tree[T]) bool { return false }
func (unbalanced[T]) format(n *node[T]) string { return fmt.Sprint(n.v) }
func (unbalanced[T]) name() string { return "BST" }

// NewBST returns an empty ascending BST of an ordered type.
func NewBST[T constraints.Ordered]() *BST[T] {
	return MakeBST[T](Compare[T], Ascending)
}

// MakeBST returns an empty BST ordered by cmp in the given order. Any order other
// than Descending is Ascending. Panics with NilComparatorError if cmp is nil.
func MakeBST[T any](cmp Comparator[T], order Order) *BST[T] {
	return &BST[T]{newTree[T](cmp, order, unbalanced[T]{})}
}

// BuildBST makes a BST and inserts the values of sli one at a time, so sli[0]
// becomes the root. Panics with EmptySliceError if sli is empty.
// Time: O(n*D)
func BuildBST[T any](sli []T, cmp Comparator[T], order Order) *BST[T] {
	if len(sli) == 0 {
		panic(EmptySliceError{})
	}
	u := MakeBST[T](cmp, order)
	for _, v := range sli {
		u.Insert(v)
	}
	return u
}
