package Trees

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

// GodsComparator adapts a gods comparator, such as utils.IntComparator or
// utils.StringComparator, to a Comparator. c panics if given values of the wrong type.
func GodsComparator[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// godsView exposes a tree as a gods containers.Container. It is a view, not a
// copy: Clear clears the tree.
type godsView[T any] struct {
	u *tree[T]
}

// Container returns a gods containers.Container backed by the tree. Values are in order.
func (u *tree[T]) Container() containers.Container {
	return godsView[T]{u}
}

func (g godsView[T]) Empty() bool {
	return g.u.sz == 0
}

func (g godsView[T]) Size() int {
	return int(g.u.sz)
}

func (g godsView[T]) Clear() {
	g.u.Clear()
}

func (g godsView[T]) Values() []interface{} {
	vs := make([]interface{}, 0, g.u.sz)
	for v := range g.u.All(InOrder) {
		vs = append(vs, v)
	}
	return vs
}

func (g godsView[T]) String() string {
	return g.u.String()
}
