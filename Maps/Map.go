package Maps

import "iter"

// Map from unique keys to values. None of the implementations are safe for concurrent use.
type Map[K any, V any] interface {
	//Put val under key, returning the value it replaced and whether there was one.
	Put(key K, val V) (V, bool)
	//GetOrPut returns the value under key if present, otherwise puts val and returns it with false.
	GetOrPut(key K, val V) (V, bool)
	HasKey(key K) bool
	Get(key K) (V, bool)
	//Remove key, returning its value and whether it was present.
	Remove(key K) (V, bool)
	//Take an arbitrary pair without removing it. The last return value is false if the map is empty.
	Take() (K, V, bool)
	//Pairs returns a closure giving the pairs one at a time, like Trees.Tree.InOrder.
	Pairs() func() (K, V, bool)
	All() iter.Seq2[K, V]
	Size() uint
	Clear()
}
