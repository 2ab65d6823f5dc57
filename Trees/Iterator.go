package Trees

import "github.com/g-m-twostay/go-collections/Queues"

// Iterator walks a tree in one Traversal order with an explicit stack, or a
// queue for LevelOrder, so it needs O(D) memory (O(width) for LevelOrder)
// and never recurses.
// The Iterator holds a reference to the tree, not a snapshot. Inserting into or
// removing from the tree during the iteration is undefined behavior: values may be
// skipped or repeated. Reset starts over from the current root.
type Iterator[T any] struct {
	u         *tree[T]
	trav      Traversal
	st        []*node[T]
	cur, last *node[T]
	q         *Queues.ArrayQueue[*node[T]]
}

// Reset the iterator to the beginning of the traversal. Buffers are reused.
func (it *Iterator[T]) Reset() {
	u := it.u
	it.st = it.st[:0]
	it.cur, it.last = u.nilPtr, u.nilPtr
	switch it.trav {
	case PreOrder:
		if u.root != u.nilPtr {
			it.st = append(it.st, u.root)
		}
	case LevelOrder:
		if it.q == nil {
			it.q = Queues.MakeArrayQueue[*node[T]](8)
		} else {
			it.q.Clear()
		}
		if u.root != u.nilPtr {
			it.q.Push(u.root)
		}
	default:
		it.cur = u.root
	}
}

// Next value of the traversal. The second return value is false once the
// traversal is exhausted, and stays false until Reset.
// Time: amortized O(1)
func (it *Iterator[T]) Next() (v T, ok bool) {
	switch it.trav {
	case PreOrder:
		return it.preOrder()
	case PostOrder:
		return it.postOrder()
	case LevelOrder:
		return it.levelOrder()
	default:
		return it.inOrder()
	}
}

// Traversal order of the iterator.
func (it *Iterator[T]) Traversal() Traversal {
	return it.trav
}

func (it *Iterator[T]) inOrder() (v T, ok bool) {
	nilPtr := it.u.nilPtr
	for ; it.cur != nilPtr; it.cur = it.cur.l {
		it.st = append(it.st, it.cur)
	}
	if len(it.st) == 0 {
		return
	}
	n := it.st[len(it.st)-1]
	it.st = it.st[:len(it.st)-1]
	it.cur = n.r
	return n.v, true
}

func (it *Iterator[T]) preOrder() (v T, ok bool) {
	if len(it.st) == 0 {
		return
	}
	n := it.st[len(it.st)-1]
	it.st = it.st[:len(it.st)-1]
	if n.r != it.u.nilPtr {
		it.st = append(it.st, n.r)
	}
	if n.l != it.u.nilPtr {
		it.st = append(it.st, n.l)
	}
	return n.v, true
}

// postOrder keeps the path to the current node on the stack; last is the node
// yielded before, telling whether the right subtree of the top is done.
func (it *Iterator[T]) postOrder() (v T, ok bool) {
	nilPtr := it.u.nilPtr
	for {
		for ; it.cur != nilPtr; it.cur = it.cur.l {
			it.st = append(it.st, it.cur)
		}
		if len(it.st) == 0 {
			return
		}
		top := it.st[len(it.st)-1]
		if top.r != nilPtr && top.r != it.last {
			it.cur = top.r
			continue
		}
		it.st = it.st[:len(it.st)-1]
		it.last = top
		return top.v, true
	}
}

func (it *Iterator[T]) levelOrder() (v T, ok bool) {
	n, err := it.q.Pop()
	if err != nil {
		return
	}
	if n.l != it.u.nilPtr {
		it.q.Push(n.l)
	}
	if n.r != it.u.nilPtr {
		it.q.Push(n.r)
	}
	return n.v, true
}
