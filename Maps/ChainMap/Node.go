package ChainMap

// node of the single list holding every pair, sorted by hash. A relay node starts a
// bucket and holds no pair; its hash is the smallest hash of the bucket.
type node[K comparable, V any] struct {
	k     K
	v     V
	hash  uint64
	nx    *node[K, V]
	relay bool
}

func makeRelay[K comparable, V any](hash uint64, next *node[K, V]) *node[K, V] {
	return &node[K, V]{hash: hash, nx: next, relay: true}
}

// next pair after u, skipping relays. nil at the end of the list.
func (u *node[K, V]) next() *node[K, V] {
	cur := u.nx
	for cur != nil && cur.relay {
		cur = cur.nx
	}
	return cur
}
