package Trees

import "fmt"

// EmptyTreeError is the panic value of Min and Max on an empty tree.
type EmptyTreeError struct {
	Op string
}

func (e EmptyTreeError) Error() string {
	return "Trees: " + e.Op + " called on an empty tree"
}

// EmptySliceError is the panic value of the Build functions when given no values.
type EmptySliceError struct {
}

func (e EmptySliceError) Error() string {
	return "Trees: building a tree needs at least one value"
}

// NilValueError is the panic value when a nil pointer, interface, map, slice, func or
// channel is given as a value. The tree is unchanged.
type NilValueError struct {
	Op string
}

func (e NilValueError) Error() string {
	return "Trees: nil value given to " + e.Op
}

// NilComparatorError is the panic value of the Make and Build functions when given a nil Comparator.
type NilComparatorError struct {
}

func (e NilComparatorError) Error() string {
	return "Trees: nil comparator"
}

// CorruptTreeError is the panic value when an operation finds the tree structure broken,
// for example a rotation without the child it pivots on. It is never recovered internally.
type CorruptTreeError struct {
	Msg string
}

func (e CorruptTreeError) Error() string {
	return "Trees: corrupt tree: " + e.Msg
}

// ShortBufferError is returned by CopyTo when the destination can't hold the whole tree.
type ShortBufferError struct {
	Need, Have int
}

func (e ShortBufferError) Error() string {
	return fmt.Sprintf("Trees: buffer has room for %d values, need %d", e.Have, e.Need)
}

// IndexOutOfRangeError is returned by CopyTo when the start index is outside [0, len(dst)].
type IndexOutOfRangeError struct {
	Index, Len int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Trees: index %d out of range [0:%d]", e.Index, e.Len)
}
