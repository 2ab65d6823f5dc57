package Queues

// ArrayQueue is a Queue backed by a circular slice. It grows by a factor of 3/2
// when full and halves when a quarter full, but never below the capacity it was
// made with.
type ArrayQueue[T any] struct {
	sz, head, tail, minCap uint
	content                []T
}

// MakeArrayQueue returns an empty queue with room for initCap items. initCap of 0 is treated as 1.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	initCap = max(initCap, 1)
	return &ArrayQueue[T]{minCap: initCap, content: make([]T, initCap)}
}

func (this *ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the items to a new slice of length newLen, newLen>=sz.
func (this *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

// Shrink the underlying slice to fit the current items.
func (this *ArrayQueue[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *ArrayQueue[T]) Size() uint {
	return this.sz
}

// Cap is the length of the underlying slice.
func (this *ArrayQueue[T]) Cap() uint {
	return uint(len(this.content))
}

// Push [Queue.Push]
// Time: amortized O(1)
func (this *ArrayQueue[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz*3/2, this.sz+1))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

// Pop [Queue.Pop]
// Time: amortized O(1)
func (this *ArrayQueue[T]) Pop() (item T, e error) {
	if this.Empty() {
		return item, &EmptyQueueError{}
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	if l := uint(len(this.content)); l > this.minCap && this.sz <= l/4 {
		this.resize(max(l/2, this.minCap))
	}
	return item, nil
}

func (this *ArrayQueue[T]) Peek() (item T, ok bool) {
	if this.Empty() {
		return
	}
	return this.content[this.head], true
}
