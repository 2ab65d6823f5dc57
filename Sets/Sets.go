package Sets

// Set of unique elements with no particular order.
type Set[E any] interface {
	//Put e. Returns false if e is already present.
	Put(e E) bool
	Has(e E) bool
	//Remove e. Returns false if e isn't present.
	Remove(e E) bool
	Size() uint
	Clear()
	//Take an arbitrary element, false if the set is empty.
	Take() (E, bool)
	//Range calls f on each element until f returns false.
	Range(f func(E) bool)
}

// ExtendedSet adds set algebra to Set. The argument may be the receiver itself.
type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s. Returns the number of elements added.
	PutAll(s Set[E]) uint
	//RemoveAll elements of s. Returns the number of elements removed.
	RemoveAll(s Set[E]) uint
	//Union is PutAll without the count.
	Union(s Set[E])
	//Intersect keeps only the elements that are also in s.
	Intersect(s Set[E])
	//SymmetricDiff keeps the elements in exactly one of the receiver and s.
	SymmetricDiff(s Set[E])
	//Eq reports whether both sets hold the same elements.
	Eq(s Set[E]) bool
	SubsetOf(s Set[E]) bool
	SupersetOf(s Set[E]) bool
	//Overlaps reports whether the sets share an element.
	Overlaps(s Set[E]) bool
	//Filter returns a new set of the elements f returns true for.
	Filter(f func(E) bool) ExtendedSet[E]
}

// Elements of s collected into a slice, so s can be modified while walking them.
func Elements[E any](s Set[E]) []E {
	es := make([]E, 0, s.Size())
	s.Range(func(e E) bool {
		es = append(es, e)
		return true
	})
	return es
}

// All reports whether f is true for every element of s.
func All[E any](s Set[E], f func(E) bool) bool {
	ok := true
	s.Range(func(e E) bool {
		ok = f(e)
		return ok
	})
	return ok
}
