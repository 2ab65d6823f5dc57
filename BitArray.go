package Go_Collections

import (
	"math/bits"
)

// NewBitArray with room for at least size bits, all clear.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size array of bits. Indices aren't checked beyond the
// bounds check of the backing slice, so Get(i) with i>=Len() may panic.
type BitArray struct {
	bits []uint
}

// Len is the number of bits, a multiple of the word size.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// First set bit, -1 if none.
// Time: O(Len()/word size)
func (u BitArray) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}

// Count of set bits.
func (u BitArray) Count() int {
	n := 0
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return n
}

// Reset clears all bits.
func (u BitArray) Reset() {
	clear(u.bits)
}
