package Queues

// Heap is a binary heap backed by a slice, usable as a priority Queue. Pop returns the
// smallest item by cmp, so a max heap is made with a reversed cmp. Items that compare
// equal come out in no particular order.
type Heap[T any] struct {
	content []T
	cmp     func(a, b T) int
}

// MakeHeap returns an empty heap with room for initCap items. Panics if cmp is nil.
func MakeHeap[T any](initCap uint, cmp func(a, b T) int) *Heap[T] {
	if cmp == nil {
		panic("Queues: nil comparator")
	}
	return &Heap[T]{content: make([]T, 0, initCap), cmp: cmp}
}

// HeapOf builds a heap over sli in place, sli is owned by the heap afterward.
// Time: O(n)
func HeapOf[T any](sli []T, cmp func(a, b T) int) *Heap[T] {
	u := MakeHeap[T](0, cmp)
	u.content = sli
	for i := len(sli)/2 - 1; i >= 0; i-- {
		u.down(i)
	}
	return u
}

func (this *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if this.cmp(this.content[i], this.content[p]) >= 0 {
			return
		}
		this.content[i], this.content[p] = this.content[p], this.content[i]
		i = p
	}
}

func (this *Heap[T]) down(i int) {
	n := len(this.content)
	for {
		m := i
		if l := 2*i + 1; l < n && this.cmp(this.content[l], this.content[m]) < 0 {
			m = l
		}
		if r := 2*i + 2; r < n && this.cmp(this.content[r], this.content[m]) < 0 {
			m = r
		}
		if m == i {
			return
		}
		this.content[i], this.content[m] = this.content[m], this.content[i]
		i = m
	}
}

// Push [Queue.Push]
// Time: O(log n)
func (this *Heap[T]) Push(item T) {
	this.content = append(this.content, item)
	this.up(len(this.content) - 1)
}

// Pop the smallest item.
// Time: O(log n)
func (this *Heap[T]) Pop() (item T, e error) {
	n := len(this.content) - 1
	if n < 0 {
		return item, &EmptyQueueError{}
	}
	item = this.content[0]
	this.content[0] = this.content[n]
	this.content[n] = *new(T)
	this.content = this.content[:n]
	this.down(0)
	return item, nil
}

// Peek at the smallest item.
func (this *Heap[T]) Peek() (item T, ok bool) {
	if len(this.content) == 0 {
		return
	}
	return this.content[0], true
}

func (this *Heap[T]) Empty() bool {
	return len(this.content) == 0
}

func (this *Heap[T]) Size() uint {
	return uint(len(this.content))
}

func (this *Heap[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}
