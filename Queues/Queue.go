package Queues

// Queue is a FIFO queue. None of the implementations are safe for concurrent use.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop the front item. Returns *EmptyQueueError if the queue is empty.
	Pop() (T, error)
	//Peek at the front item without removing it. The second return value
	//is false if the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
	//Clear the queue, releasing references to the items it held.
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
