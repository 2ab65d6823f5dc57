package HashSet

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
)

const (
	DefaultCapacity   = 32
	DefaultLoadFactor = 0.75
	resizeScale       = 0.5
)

// New HashSet of type E.
// capacity is the initial table size, raised to DefaultCapacity if smaller. The table never
// shrinks below it. loadFactor is the ratio of occupied slots that triggers a resize, 0 means
// DefaultLoadFactor. Panics with InvalidLoadFactorError if loadFactor is outside (0, 1] and with
// NilHasherError if hash is nil.
func New[E comparable](capacity uint, loadFactor float64, hash Go_Collections.Hasher[E]) *HashSet[E] {
	if hash == nil {
		panic(NilHasherError{})
	}
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	} else if !(loadFactor > 0 && loadFactor <= 1) {
		panic(InvalidLoadFactorError{loadFactor})
	}
	capacity = max(capacity, DefaultCapacity)
	u := &HashSet[E]{minCap: capacity, lf: loadFactor, hasher: hash}
	u.alloc(capacity)
	return u
}

// HashSet is an open addressing hash set with linear scanning. Removed elements leave
// tombstones that are reused by later puts and dropped when the table is rebuilt.
// The table doubles when the elements reach cap*loadFactor and shrinks to
// size/loadFactor*1.25 when they fall to half of that.
type HashSet[E comparable] struct {
	bkt        []slot[E]
	live, tomb Go_Collections.BitArray
	sz, used   uint //used counts the tombstones too
	minCap     uint
	lf         float64
	hasher     Go_Collections.Hasher[E]
}

func (u *HashSet[E]) alloc(c uint) {
	u.bkt = make([]slot[E], c)
	u.live, u.tomb = Go_Collections.NewBitArray(c), Go_Collections.NewBitArray(c)
	u.used = 0
}

func (u *HashSet[E]) limit() uint {
	return max(uint(float64(len(u.bkt))*u.lf), 1)
}

func (u *HashSet[E]) step(i int) int {
	if i++; i == len(u.bkt) {
		return 0
	}
	return i
}

// find e. Returns the index of e and true if present, otherwise the first slot e could be put
// in and false. The index is -1 if e isn't present and there is no such slot.
// Time: O(1) on average; O(cap) at worst.
func (u *HashSet[E]) find(e E, h uint64) (int, bool) {
	free := -1
	for n, i := 0, int(h%uint64(len(u.bkt))); n < len(u.bkt); n, i = n+1, u.step(i) {
		if u.live.Get(i) {
			if u.bkt[i].hash == h && u.bkt[i].element == e {
				return i, true
			}
		} else if u.tomb.Get(i) {
			if free < 0 {
				free = i
			}
		} else {
			if free < 0 {
				free = i
			}
			break
		}
	}
	return free, false
}

// fill slot i, which must be free.
func (u *HashSet[E]) fill(i int, e E, h uint64) {
	if u.tomb.Get(i) {
		u.tomb.Clr(i)
	} else {
		u.used++
	}
	u.live.Set(i)
	u.bkt[i] = slot[E]{e, h}
	u.sz++
}

// resize rebuilds the table with c slots, dropping the tombstones. c must be greater than Size.
func (u *HashSet[E]) resize(c uint) {
	old, live := u.bkt, u.live
	u.alloc(c)
	u.sz = 0
	for i := range old {
		if live.Get(i) {
			j := int(old[i].hash % uint64(c))
			for u.live.Get(j) {
				j = u.step(j)
			}
			u.fill(j, old[i].element, old[i].hash)
		}
	}
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Cap is the number of slots in the table.
func (u *HashSet[E]) Cap() uint {
	return uint(len(u.bkt))
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	_, ok := u.find(e, u.hasher(e))
	return ok
}

// Put e into the set. Returns false if e is already present.
func (u *HashSet[E]) Put(e E) bool {
	h := u.hasher(e)
	i, ok := u.find(e, h)
	if ok {
		return false
	}
	if lim := u.limit(); u.used >= lim {
		if u.sz >= lim {
			u.resize(uint(float64(len(u.bkt)) / resizeScale))
		} else {
			u.resize(uint(len(u.bkt)))
		}
		i, _ = u.find(e, h)
	}
	u.fill(i, e, h)
	return true
}

// Remove e from the set. Returns false if e isn't present.
func (u *HashSet[E]) Remove(e E) bool {
	i, ok := u.find(e, u.hasher(e))
	if !ok {
		return false
	}
	u.live.Clr(i)
	u.tomb.Set(i)
	u.bkt[i] = slot[E]{}
	u.sz--
	if c := uint(len(u.bkt)); c > u.minCap && u.sz <= uint(float64(c)*u.lf*resizeScale) {
		u.resize(max(uint(float64(u.sz)/u.lf*1.25), u.minCap))
	}
	return true
}

// Clear the set, the table goes back to its initial capacity.
func (u *HashSet[E]) Clear() {
	u.alloc(u.minCap)
	u.sz = 0
}

// Take an arbitrary element from the set without removing it. Returns false if the set is empty.
func (u *HashSet[E]) Take() (e E, ok bool) {
	if i := u.live.First(); i > -1 {
		e, ok = u.bkt[i].element, true
	}
	return
}

// Range over the elements and call f on them, stopping when f returns false.
// Putting or removing during Range is undefined behavior.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i := range u.bkt {
		if u.live.Get(i) {
			if !f(u.bkt[i].element) {
				return
			}
		}
	}
}
