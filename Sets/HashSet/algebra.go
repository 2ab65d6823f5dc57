package HashSet

import "github.com/g-m-twostay/go-collections/Sets"

// PutAll [Sets.ExtendedSet.PutAll]
// Time: O(s.Size())
func (u *HashSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	for _, e := range Sets.Elements(s) {
		if u.Put(e) {
			n++
		}
	}
	return
}

// RemoveAll [Sets.ExtendedSet.RemoveAll]
// Time: O(s.Size())
func (u *HashSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	for _, e := range Sets.Elements(s) {
		if u.Remove(e) {
			n++
		}
	}
	return
}

// Union [Sets.ExtendedSet.Union]
func (u *HashSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect [Sets.ExtendedSet.Intersect]
// Time: O(u.Size())
func (u *HashSet[E]) Intersect(s Sets.Set[E]) {
	for _, e := range Sets.Elements[E](u) {
		if !s.Has(e) {
			u.Remove(e)
		}
	}
}

// SymmetricDiff [Sets.ExtendedSet.SymmetricDiff]
// Time: O(s.Size())
func (u *HashSet[E]) SymmetricDiff(s Sets.Set[E]) {
	for _, e := range Sets.Elements(s) {
		if !u.Remove(e) {
			u.Put(e)
		}
	}
}

// Eq [Sets.ExtendedSet.Eq]
func (u *HashSet[E]) Eq(s Sets.Set[E]) bool {
	return u.sz == s.Size() && u.SubsetOf(s)
}

// SubsetOf [Sets.ExtendedSet.SubsetOf]
// The empty set is a subset of every set.
func (u *HashSet[E]) SubsetOf(s Sets.Set[E]) bool {
	return u.sz <= s.Size() && Sets.All[E](u, s.Has)
}

// SupersetOf [Sets.ExtendedSet.SupersetOf]
func (u *HashSet[E]) SupersetOf(s Sets.Set[E]) bool {
	return s.Size() <= u.sz && Sets.All(s, u.Has)
}

// Overlaps [Sets.ExtendedSet.Overlaps]
// Walks the smaller set.
func (u *HashSet[E]) Overlaps(s Sets.Set[E]) bool {
	small, big := Sets.Set[E](u), s
	if s.Size() < u.sz {
		small, big = s, u
	}
	return !Sets.All(small, func(e E) bool { return !big.Has(e) })
}

// Filter [Sets.ExtendedSet.Filter]
// The new set has the load factor, minimum capacity and Hasher of u.
func (u *HashSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	v := New[E](u.minCap, u.lf, u.hasher)
	u.Range(func(e E) bool {
		if f(e) {
			v.Put(e)
		}
		return true
	})
	return v
}
