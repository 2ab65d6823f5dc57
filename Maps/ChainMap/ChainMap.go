package ChainMap

import (
	"iter"
	"math/bits"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Maps"
)

const (
	DefaultCapacity   = 32
	DefaultLoadFactor = 0.75
	shrinkScale       = 0.4
	maxChunk          = 62
)

// ChainMap is a separate chaining hash map. All pairs live in one singly linked list
// sorted by hash, and bucket i points at the relay node in front of the pairs whose
// hash has i as its top chunk bits. The chains of the buckets are the segments of the
// list between relays, so resizing only adds or removes relays and never moves a pair.
// The number of buckets doubles when Size reaches buckets*loadFactor and halves when it
// falls to buckets*loadFactor*0.4, never below the initial number.
type ChainMap[K comparable, V any] struct {
	buckets         []*node[K, V]
	chunk, minChunk byte //1<<chunk=len(buckets)
	sz              uint
	lf              float64
	hasher          Go_Collections.Hasher[K]
}

// New ChainMap. capacity is the initial number of buckets, rounded up to a power of 2 and
// to at least DefaultCapacity. loadFactor 0 means DefaultLoadFactor. Panics with
// Maps.InvalidLoadFactorError if loadFactor is outside (0, 1] and with Maps.NilHasherError
// if hash is nil.
func New[K comparable, V any](capacity uint, loadFactor float64, hash Go_Collections.Hasher[K]) *ChainMap[K, V] {
	if hash == nil {
		panic(Maps.NilHasherError{})
	}
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	} else if !(loadFactor > 0 && loadFactor <= 1) {
		panic(Maps.InvalidLoadFactorError{LoadFactor: loadFactor})
	}
	chunk := byte(min(bits.Len(max(capacity, DefaultCapacity)-1), maxChunk))
	u := &ChainMap[K, V]{chunk: chunk, minChunk: chunk, lf: loadFactor, hasher: hash}
	u.alloc()
	return u
}

// alloc empty buckets, linking one relay per bucket.
func (u *ChainMap[K, V]) alloc() {
	u.buckets = make([]*node[K, V], 1<<u.chunk)
	var nx *node[K, V]
	for i := len(u.buckets) - 1; i >= 0; i-- {
		nx = makeRelay(uint64(i)<<(64-u.chunk), nx)
		u.buckets[i] = nx
	}
}

func (u *ChainMap[K, V]) bucket(hash uint64) *node[K, V] {
	return u.buckets[hash>>(64-u.chunk)]
}

// search the chain of hash for key. Returns the node holding key, or nil and the node
// after which key should be linked: the last one with a hash not greater than hash.
// Time: O(1) on average.
func (u *ChainMap[K, V]) search(key K, hash uint64) (pre, cur *node[K, V]) {
	pre = u.bucket(hash)
	for cur = pre.nx; cur != nil && !cur.relay && cur.hash <= hash; pre, cur = cur, cur.nx {
		if cur.hash == hash && cur.k == key {
			return pre, cur
		}
	}
	return pre, nil
}

// trySplit doubles the buckets. Every old bucket i becomes 2i, and a relay for 2i+1
// goes in front of the first pair of the old chain that belongs to the upper half.
func (u *ChainMap[K, V]) trySplit() {
	if u.chunk >= maxChunk || float64(u.sz) < float64(len(u.buckets))*u.lf {
		return
	}
	newBuckets := make([]*node[K, V], len(u.buckets)<<1)
	for i, b := range u.buckets {
		newBuckets[i<<1] = b
		h := uint64(i<<1|1) << (64 - u.chunk - 1)
		pre := b
		for pre.nx != nil && !pre.nx.relay && pre.nx.hash < h {
			pre = pre.nx
		}
		pre.nx = makeRelay(h, pre.nx)
		newBuckets[i<<1|1] = pre.nx
	}
	u.buckets = newBuckets
	u.chunk++
}

// tryMerge halves the buckets, unlinking the relays of the odd ones.
func (u *ChainMap[K, V]) tryMerge() {
	if u.chunk <= u.minChunk || float64(u.sz) > float64(len(u.buckets))*u.lf*shrinkScale {
		return
	}
	newBuckets := make([]*node[K, V], len(u.buckets)>>1)
	for i := 0; i < len(u.buckets); i += 2 {
		newBuckets[i>>1] = u.buckets[i]
		pre, relay := u.buckets[i], u.buckets[i+1]
		for pre.nx != relay {
			pre = pre.nx
		}
		pre.nx = relay.nx
	}
	u.buckets = newBuckets
	u.chunk--
}

// Put [Maps.Map.Put]
func (u *ChainMap[K, V]) Put(key K, val V) (old V, replaced bool) {
	hash := u.hasher(key)
	pre, cur := u.search(key, hash)
	if cur != nil {
		old, cur.v = cur.v, val
		return old, true
	}
	pre.nx = &node[K, V]{k: key, v: val, hash: hash, nx: pre.nx}
	u.sz++
	u.trySplit()
	return
}

// GetOrPut [Maps.Map.GetOrPut]
func (u *ChainMap[K, V]) GetOrPut(key K, val V) (V, bool) {
	hash := u.hasher(key)
	pre, cur := u.search(key, hash)
	if cur != nil {
		return cur.v, true
	}
	pre.nx = &node[K, V]{k: key, v: val, hash: hash, nx: pre.nx}
	u.sz++
	u.trySplit()
	return val, false
}

// Get [Maps.Map.Get]
func (u *ChainMap[K, V]) Get(key K) (val V, ok bool) {
	if _, cur := u.search(key, u.hasher(key)); cur != nil {
		return cur.v, true
	}
	return
}

// HasKey [Maps.Map.HasKey]
func (u *ChainMap[K, V]) HasKey(key K) bool {
	_, cur := u.search(key, u.hasher(key))
	return cur != nil
}

// Remove [Maps.Map.Remove]
func (u *ChainMap[K, V]) Remove(key K) (val V, ok bool) {
	pre, cur := u.search(key, u.hasher(key))
	if cur == nil {
		return
	}
	pre.nx = cur.nx
	cur.nx = nil
	u.sz--
	u.tryMerge()
	return cur.v, true
}

// Size [Maps.Map.Size]
func (u *ChainMap[K, V]) Size() uint {
	return u.sz
}

// Buckets is the current number of buckets.
func (u *ChainMap[K, V]) Buckets() uint {
	return uint(len(u.buckets))
}

// Clear [Maps.Map.Clear]
// The buckets go back to the initial number.
func (u *ChainMap[K, V]) Clear() {
	u.chunk = u.minChunk
	u.alloc()
	u.sz = 0
}

// Take [Maps.Map.Take]
// Returns the pair with the smallest hash.
func (u *ChainMap[K, V]) Take() (k K, v V, ok bool) {
	if cur := u.buckets[0].next(); cur != nil {
		return cur.k, cur.v, true
	}
	return
}

// Pairs [Maps.Map.Pairs]
// The pairs come in the order of their hashes. Modifying the map while using the closure
// is undefined behavior.
func (u *ChainMap[K, V]) Pairs() func() (K, V, bool) {
	cur := u.buckets[0]
	return func() (k K, v V, ok bool) {
		if cur == nil {
			return
		}
		if cur = cur.next(); cur != nil {
			k, v, ok = cur.k, cur.v, true
		}
		return
	}
}

// All [Maps.Map.All]
func (u *ChainMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for cur := u.buckets[0].next(); cur != nil; cur = cur.next() {
			if !yield(cur.k, cur.v) {
				return
			}
		}
	}
}

// corrupt reports whether the list isn't sorted by hash, a pair sits in the wrong bucket,
// a bucket doesn't point at its relay, or the size is off. Time: O(n)
func (u *ChainMap[K, V]) corrupt() bool {
	var n uint
	b := -1
	var last uint64
	for cur := u.buckets[0]; cur != nil; cur = cur.nx {
		if cur.hash < last {
			return true
		}
		last = cur.hash
		if cur.relay {
			if b++; b >= len(u.buckets) || u.buckets[b] != cur || cur.hash != uint64(b)<<(64-u.chunk) {
				return true
			}
		} else {
			n++
			if int(cur.hash>>(64-u.chunk)) != b {
				return true
			}
		}
	}
	return n != u.sz || b != len(u.buckets)-1
}
