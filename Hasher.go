package Go_Collections

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a value to a 64 bit hash. Two values that are == must hash to the same value.
// The hash containers in this module never mix hashes of different Hasher functions.
type Hasher[E any] func(E) uint64

// HashString hashes the bytes of v without copying them.
func HashString(v string) uint64 {
	return xxhash.Sum64String(v)
}

// HashBytes hashes the given byte slice. A nil slice hashes like an empty one.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashInteger hashes the little endian 8 byte form of v, so equal values of
// different integer types hash the same.
func HashInteger[I constraints.Integer](v I) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return xxhash.Sum64(b[:])
}
