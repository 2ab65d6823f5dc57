package Lists

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"

	"github.com/emirpasic/gods/containers"
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Trees"
	"golang.org/x/exp/constraints"
)

// MaxLevel is the number of forward links of the head, no node is taller.
const MaxLevel = 32

type skipNode[T any] struct {
	v    T
	next []*skipNode[T] //next[l] is the following node on level l
}

// SkipList is an ordered set made of sorted linked lists stacked in levels. Every node is on
// level 0 and on each further level with probability 1/2, so the expected search cost is
// O(log n). Equal values are kept as separate nodes, a new one goes before the equal ones.
// The errors of package Trees are used for the same conditions.
type SkipList[T any] struct {
	head    *skipNode[T]
	level   int //levels in use, head.next[level:] are nil
	sz      uint
	cmp     Trees.Comparator[T]
	order   Trees.Order
	nilable bool
	rg      *rand.Rand
}

// NewSkipList returns an empty ascending SkipList of an ordered type.
func NewSkipList[T constraints.Ordered]() *SkipList[T] {
	return MakeSkipList[T](Trees.Compare[T], Trees.Ascending, 0)
}

// MakeSkipList returns an empty SkipList ordered by cmp in the given order. Any order other
// than Descending is Ascending. seed drives the level of new nodes, the same seed and inputs
// give the same structure. Panics with Trees.NilComparatorError if cmp is nil.
func MakeSkipList[T any](cmp Trees.Comparator[T], order Trees.Order, seed int64) *SkipList[T] {
	if cmp == nil {
		panic(Trees.NilComparatorError{})
	}
	if order != Trees.Descending {
		order = Trees.Ascending
	}
	return &SkipList[T]{head: &skipNode[T]{next: make([]*skipNode[T], MaxLevel)}, cmp: cmp, order: order,
		nilable: Go_Collections.CanBeNil[T](), rg: rand.New(rand.NewSource(seed))}
}

// BuildSkipList makes a SkipList and inserts the values of sli. Panics with Trees.EmptySliceError
// if sli is empty.
// Time: O(n*log(n)) expected
func BuildSkipList[T any](sli []T, cmp Trees.Comparator[T], order Trees.Order, seed int64) *SkipList[T] {
	if len(sli) == 0 {
		panic(Trees.EmptySliceError{})
	}
	u := MakeSkipList[T](cmp, order, seed)
	for _, v := range sli {
		u.Insert(v)
	}
	return u
}

func (u *SkipList[T]) compare(a, b T) int {
	if c := u.cmp(a, b); c < 0 {
		return -int(u.order)
	} else if c > 0 {
		return int(u.order)
	}
	return 0
}

func (u *SkipList[T]) check(v T, op string) {
	if u.nilable && Go_Collections.IsNil(v) {
		panic(Trees.NilValueError{Op: op})
	}
}

func (u *SkipList[T]) randomLevel() int {
	l := 1
	for l < MaxLevel && u.rg.Int63()&1 == 0 {
		l++
	}
	return l
}

// before walks down to the last node on each level whose value is less than v, or less or
// equal if orEqual. The nodes are recorded in pre when it isn't nil. Returns the level 0 node.
// Time: O(log(n)) expected
func (u *SkipList[T]) before(v T, orEqual bool, pre []*skipNode[T]) *skipNode[T] {
	x := u.head
	for l := u.level - 1; l >= 0; l-- {
		for nx := x.next[l]; nx != nil; nx = x.next[l] {
			if c := u.compare(nx.v, v); c > 0 || c == 0 && !orEqual {
				break
			}
			x = nx
		}
		if pre != nil {
			pre[l] = x
		}
	}
	return x
}

// Insert [Trees.OrderedSet.Insert]
// Always stores v and returns true.
// Panics with Trees.NilValueError if v is nil.
func (u *SkipList[T]) Insert(v T) bool {
	u.check(v, "Insert")
	lvl := u.randomLevel()
	pre := make([]*skipNode[T], max(lvl, u.level))
	for l := u.level; l < lvl; l++ {
		pre[l] = u.head
	}
	u.before(v, false, pre)
	n := &skipNode[T]{v: v, next: make([]*skipNode[T], lvl)}
	for l := range lvl {
		n.next[l], pre[l].next[l] = pre[l].next[l], n
	}
	u.level = max(u.level, lvl)
	u.sz++
	return true
}

// Remove [Trees.OrderedSet.Remove]
// The first of the equal values is removed.
// Panics with Trees.NilValueError if v is nil.
func (u *SkipList[T]) Remove(v T) bool {
	u.check(v, "Remove")
	pre := make([]*skipNode[T], u.level)
	x := u.before(v, false, pre).next[0]
	if x == nil || u.compare(x.v, v) != 0 {
		return false
	}
	for l := range x.next {
		pre[l].next[l] = x.next[l]
	}
	x.next = nil
	for u.level > 0 && u.head.next[u.level-1] == nil {
		u.level--
	}
	u.sz--
	return true
}

// Has [Trees.OrderedSet.Has]
// Panics with Trees.NilValueError if v is nil.
func (u *SkipList[T]) Has(v T) bool {
	u.check(v, "Has")
	x := u.before(v, false, nil).next[0]
	return x != nil && u.compare(x.v, v) == 0
}

// Minimum [Trees.OrderedSet.Minimum]
// Time: O(1)
func (u *SkipList[T]) Minimum() (v T, ok bool) {
	if x := u.head.next[0]; x != nil {
		v, ok = x.v, true
	}
	return
}

// Maximum [Trees.OrderedSet.Maximum]
func (u *SkipList[T]) Maximum() (v T, ok bool) {
	x := u.head
	for l := u.level - 1; l >= 0; l-- {
		for x.next[l] != nil {
			x = x.next[l]
		}
	}
	if x != u.head {
		v, ok = x.v, true
	}
	return
}

// Min [Trees.OrderedSet.Min]
func (u *SkipList[T]) Min() T {
	if v, ok := u.Minimum(); ok {
		return v
	}
	panic(Trees.EmptyTreeError{Op: "Min"})
}

// Max [Trees.OrderedSet.Max]
func (u *SkipList[T]) Max() T {
	if v, ok := u.Maximum(); ok {
		return v
	}
	panic(Trees.EmptyTreeError{Op: "Max"})
}

// Predecessor [Trees.OrderedSet.Predecessor]
// Panics with Trees.NilValueError if v is nil.
func (u *SkipList[T]) Predecessor(v T) (p T, ok bool) {
	u.check(v, "Predecessor")
	if x := u.before(v, false, nil); x != u.head {
		p, ok = x.v, true
	}
	return
}

// Successor [Trees.OrderedSet.Successor]
// Panics with Trees.NilValueError if v is nil.
func (u *SkipList[T]) Successor(v T) (s T, ok bool) {
	u.check(v, "Successor")
	if x := u.before(v, true, nil).next[0]; x != nil {
		s, ok = x.v, true
	}
	return
}

// Size [Trees.OrderedSet.Size]
func (u *SkipList[T]) Size() uint {
	return u.sz
}

// Clear [Trees.OrderedSet.Clear]
func (u *SkipList[T]) Clear() {
	clear(u.head.next)
	u.level, u.sz = 0, 0
}

// InOrder [Trees.OrderedSet.InOrder]
// Time: f(): O(1)
func (u *SkipList[T]) InOrder() func() (T, bool) {
	x := u.head
	return func() (v T, ok bool) {
		if x != nil && x.next[0] != nil {
			x = x.next[0]
			return x.v, true
		}
		x = nil
		return
	}
}

// All values in order as a range-over-func sequence.
func (u *SkipList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := u.head.next[0]; x != nil; x = x.next[0] {
			if !yield(x.v) {
				return
			}
		}
	}
}

// CopyTo [Trees.OrderedSet.CopyTo]
// Nothing is written if at is out of [0, len(dst)] or the remaining room is too small.
func (u *SkipList[T]) CopyTo(dst []T, at int) (int, error) {
	if at < 0 || at > len(dst) {
		return 0, Trees.IndexOutOfRangeError{Index: at, Len: len(dst)}
	}
	if room := len(dst) - at; uint(room) < u.sz {
		return 0, Trees.ShortBufferError{Need: int(u.sz), Have: room}
	}
	i := at
	for v := range u.All() {
		dst[i] = v
		i++
	}
	return i - at, nil
}

// Corrupt [Trees.OrderedSet.Corrupt]
// Every level must be sorted, hold exactly the level 0 nodes that are tall enough, and
// level 0 must hold Size nodes.
// Time: O(n*log(n)) expected
func (u *SkipList[T]) Corrupt() bool {
	if u.level < 0 || u.level > MaxLevel {
		return true
	}
	for l := u.level; l < MaxLevel; l++ {
		if u.head.next[l] != nil {
			return true
		}
	}
	tall := make([]uint, MaxLevel)
	var cnt uint
	for x := u.head.next[0]; x != nil; x = x.next[0] {
		if len(x.next) == 0 || len(x.next) > u.level {
			return true
		}
		for l := range x.next {
			tall[l]++
		}
		cnt++
	}
	if cnt != u.sz {
		return true
	}
	for l := range u.level {
		var n uint
		for x := u.head.next[l]; x != nil; x = x.next[l] {
			if len(x.next) <= l || x.next[l] != nil && u.compare(x.v, x.next[l].v) > 0 {
				return true
			}
			if n++; n > tall[l] {
				return true
			}
		}
		if n != tall[l] {
			return true
		}
	}
	return false
}

// String lists the levels from the top, one per line.
func (u *SkipList[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SkipList[%d]\n", u.sz)
	for l := u.level - 1; l >= 0; l-- {
		fmt.Fprintf(&sb, "%d:", l)
		for x := u.head.next[l]; x != nil; x = x.next[l] {
			fmt.Fprintf(&sb, " %v", x.v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type godsView[T any] struct {
	u *SkipList[T]
}

// Container returns a gods containers.Container backed by the list. Clear clears the list.
func (u *SkipList[T]) Container() containers.Container {
	return godsView[T]{u}
}

func (g godsView[T]) Empty() bool {
	return g.u.sz == 0
}

func (g godsView[T]) Size() int {
	return int(g.u.sz)
}

func (g godsView[T]) Clear() {
	g.u.Clear()
}

func (g godsView[T]) Values() []interface{} {
	vs := make([]interface{}, 0, g.u.sz)
	for v := range g.u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (g godsView[T]) String() string {
	return g.u.String()
}
