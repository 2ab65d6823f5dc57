package Trees

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

// OrderedSet is an ordered collection of values.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty set, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// "Less" and "greater" always refer to the order the set was made with,
// so on a Descending set Minimum returns the largest value by the comparator.
// The error types of this package are the panic and return values of every
// implementation. Methods implemented recursively should be noted, otherwise
// functions are implemented iteratively.
type OrderedSet[T any] interface {
	//Insert v to the set. Returning true if v was stored.
	//Exact behavior on duplicates depend on implementation.
	Insert(v T) bool
	//Remove one occurrence of v from the set. Returning false if v isn't in the set.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the set.
	Minimum() (T, bool)
	//Maximum element of the set.
	Maximum() (T, bool)
	//Min is Minimum but panics with EmptyTreeError on an empty set.
	Min() T
	//Max is Maximum but panics with EmptyTreeError on an empty set.
	Max() T
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the set.
	Size() uint
	//Clear the set.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the set,
	//which is its order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted.
	InOrder() func() (T, bool)
	//CopyTo writes the in-order values to dst starting at dst[at].
	CopyTo(dst []T, at int) (int, error)
	//Corrupt returns whether the set has corrupt structures, when the value
	//at some node or link violates the properties of that specific implementation.
	Corrupt() bool
	//Container returns the set as a gods Container.
	Container() containers.Container
	String() string
}

// Tree is an OrderedSet implemented using linked binary nodes, so it can also be walked in
// the orders of Traversal.
type Tree[T any] interface {
	OrderedSet[T]
	//Iterate returns a restartable Iterator in the given order.
	Iterate(trav Traversal) *Iterator[T]
	//All returns the values in the given order as a range-over-func sequence.
	All(trav Traversal) iter.Seq[T]
}

// Comparator is a total order over T: negative if a<b, 0 if a==b, positive if a>b.
type Comparator[T any] func(a, b T) int

// Compare is the natural Comparator of ordered types. NaN is less than every other float.
func Compare[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Order is the direction values are stored in. The comparator result is multiplied
// by it, so Descending reverses every ordered operation without a new comparator.
type Order int8

const (
	Ascending  Order = 1
	Descending Order = -1
)

// Traversal selects the order an Iterator visits the nodes of a tree in.
type Traversal uint8

const (
	InOrder    Traversal = iota //sorted order, the default
	PreOrder                    //node, then left subtree, then right subtree
	PostOrder                   //left subtree, then right subtree, then node
	LevelOrder                  //breadth first, left to right
)

func (t Traversal) String() string {
	switch t {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown"
}
