package HashSet

// slot of the table. Whether it holds an element or a tombstone is kept in the
// bit arrays of the set; the hash is kept so resizing doesn't call the Hasher.
type slot[E comparable] struct {
	element E
	hash    uint64
}
