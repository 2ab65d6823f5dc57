package Queues

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedQueue is a Queue backed by a singly linked list with a dummy head.
type LinkedQueue[T any] struct {
	headPtr, tail *node[T]
	sz            uint
}

func MakeLinkedQueue[T any]() *LinkedQueue[T] {
	a := new(node[T])
	return &LinkedQueue[T]{headPtr: a, tail: a}
}

// Push [Queue.Push]
// Time: O(1)
func (c *LinkedQueue[T]) Push(item T) {
	c.tail.nx = &node[T]{v: item}
	c.tail = c.tail.nx
	c.sz++
}

// Pop [Queue.Pop]
// The popped node becomes the new dummy head, its value is cleared.
// Time: O(1)
func (c *LinkedQueue[T]) Pop() (v T, e error) {
	first := c.headPtr.nx
	if first == nil {
		return v, &EmptyQueueError{}
	}
	v = first.v
	first.v = *new(T)
	c.headPtr = first
	c.sz--
	return v, nil
}

func (c *LinkedQueue[T]) Peek() (v T, ok bool) {
	if first := c.headPtr.nx; first != nil {
		return first.v, true
	}
	return
}

func (c *LinkedQueue[T]) Empty() bool {
	return c.headPtr.nx == nil
}

func (c *LinkedQueue[T]) Size() uint {
	return c.sz
}

func (c *LinkedQueue[T]) Clear() {
	c.headPtr.nx = nil
	c.tail = c.headPtr
	c.sz = 0
}
