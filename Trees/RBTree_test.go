package Trees

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

func TestRBTree_InsertFixup(t *testing.T) {
	rb := NewRBTree[int]()
	rb.Insert(33)
	u := &rb.tree
	old := u.root
	l := u.attach(old, true, 13, false)
	ll := u.attach(l, true, 11, true)
	lr := u.attach(l, false, 21, true)
	lrl := u.attach(lr, true, 15, false)
	lrr := u.attach(lr, false, 31, false)
	r := u.attach(old, false, 53, true)
	rl := u.attach(r, true, 41, false)
	rr := u.attach(r, false, 61, false)
	if rb.Corrupt() {
		t.Fatalf("hand built tree is corrupt:\n%s", rb)
	}

	rb.Insert(20)

	if u.root != lr || lr.p != u.nilPtr {
		t.Fatalf("root is %d, want 21:\n%s", u.root.v, rb)
	}
	if lr.l != l || l.l != ll || l.r != lrl || lrl.r.v != 20 {
		t.Errorf("left side misplaced:\n%s", rb)
	}
	if lr.r != old || old.l != lrr || old.r != r || r.l != rl || r.r != rr {
		t.Errorf("right side misplaced:\n%s", rb)
	}
	if l.p != lr || ll.p != l || lrl.p != l || lrl.r.p != lrl || old.p != lr || lrr.p != old || r.p != old || rl.p != r || rr.p != r {
		t.Error("parent references broken")
	}
	for _, n := range []*node[int]{lr, ll, lrl, lrr, r} {
		if !n.black {
			t.Errorf("%d is red", n.v)
		}
	}
	for _, n := range []*node[int]{l, old, lrl.r, rl, rr} {
		if n.black {
			t.Errorf("%d is black", n.v)
		}
	}
	if rb.Corrupt() || rb.Size() != 10 {
		t.Errorf("tree corrupt or of size %d", rb.Size())
	}
	if rb.BlackHeight() != 3 {
		t.Errorf("black height is %d", rb.BlackHeight())
	}
}

func TestRBTree_NoDuplicates(t *testing.T) {
	rb := BuildRBTree([]int{5, 3, 5, 8, 3, 5}, Compare[int], Ascending)
	if rb.Size() != 3 {
		t.Errorf("size is %d, want 3", rb.Size())
	}
	if rb.Insert(8) {
		t.Error("inserted 8 twice")
	}
	if !rb.Remove(5) || rb.Has(5) || rb.Remove(5) {
		t.Error("5 survived a remove")
	}
	if got := slices.Collect(rb.All(InOrder)); !slices.Equal(got, []int{3, 8}) {
		t.Errorf("in-order is %v", got)
	}
}

func TestRBTree_Depth(t *testing.T) {
	const n = 1023
	rb, bst := NewRBTree[int](), NewBST[int]()
	for i := range n {
		rb.Insert(i)
		bst.Insert(i)
	}
	bound := uint(2 * math.Log2(n+1))
	if d := rb.MaxDepth(); d > bound {
		t.Errorf("red-black depth %d over %d", d, bound)
	}
	if d := bst.MaxDepth(); d != n {
		t.Errorf("sorted input gave the BST depth %d", d)
	}
	if rb.MinDepth() == 0 || rb.MinDepth() > rb.MaxDepth() {
		t.Errorf("min depth is %d", rb.MinDepth())
	}
	for i := 0; i < n; i += 2 {
		rb.Remove(i)
	}
	if d := rb.MaxDepth(); d > uint(2*math.Log2(float64(rb.Size()+1))) {
		t.Errorf("depth %d after removals with %d values", d, rb.Size())
	}
	if rb.Corrupt() {
		t.Error("tree corrupt")
	}
}

func TestRBTree_Random(t *testing.T) {
	rb := NewRBTree[int]()
	oracle := redblacktree.NewWithIntComparator()
	for i := range tAddN {
		v := rg.Intn(tAddValRange)
		if rg.Intn(3) == 0 {
			_, found := oracle.Get(v)
			if rb.Remove(v) != found {
				t.Fatalf("Remove(%d) disagrees, present: %t", v, found)
			}
			oracle.Remove(v)
		} else {
			_, found := oracle.Get(v)
			if rb.Insert(v) == found {
				t.Fatalf("Insert(%d) disagrees, present: %t", v, found)
			}
			oracle.Put(v, struct{}{})
		}
		if i%4096 == 0 && rb.Corrupt() {
			t.Fatalf("tree corrupt after %d operations", i)
		}
	}
	if rb.Size() != uint(oracle.Size()) {
		t.Errorf("size is %d, want %d", rb.Size(), oracle.Size())
	}
	keys := oracle.Keys()
	got := slices.Collect(rb.All(InOrder))
	if len(got) != len(keys) {
		t.Fatalf("%d values, want %d", len(got), len(keys))
	}
	for i, k := range keys {
		if got[i] != k.(int) {
			t.Fatalf("value %d is %d, want %d", i, got[i], k)
		}
	}
	if rb.Corrupt() {
		t.Error("tree corrupt")
	}
	t.Logf("depth: %d..%d, black height: %d, size: %d.\n", rb.MinDepth(), rb.MaxDepth(), rb.BlackHeight(), rb.Size())
}

func TestRBTree_RemoveAll(t *testing.T) {
	vals := rg.Perm(5000)
	rb := BuildRBTree(vals, Compare[int], Ascending)
	rg.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	for i, v := range vals {
		if !rb.Remove(v) {
			t.Fatalf("failed to remove %d", v)
		}
		if i%500 == 0 && rb.Corrupt() {
			t.Fatalf("tree corrupt after removing %d values", i+1)
		}
	}
	if rb.Size() != 0 || rb.root != rb.nilPtr || rb.nilPtr.p != rb.nilPtr || !rb.nilPtr.black {
		t.Error("emptied tree isn't clean")
	}
}

// removing everything and putting the same values back answers Has as before.
func TestTree_RoundTrip(t *testing.T) {
	const lo, hi = -3, 3003
	vals := make([]int, 0, 2000)
	for range cap(vals) {
		vals = append(vals, rg.Intn(3000))
	}
	for _, tr := range []Tree[int]{BuildBST(vals, Compare[int], Ascending), BuildRBTree(vals, Compare[int], Ascending)} {
		before := make([]bool, hi-lo)
		for q := lo; q < hi; q++ {
			before[q-lo] = tr.Has(q)
		}
		size := tr.Size()
		for _, v := range vals {
			tr.Remove(v)
		}
		if tr.Size() != 0 {
			t.Fatalf("%T: %d values left", tr, tr.Size())
		}
		for q := lo; q < hi; q++ {
			if tr.Has(q) {
				t.Fatalf("%T: has %d after removing everything", tr, q)
			}
		}
		for _, v := range vals {
			tr.Insert(v)
		}
		if tr.Size() != size || tr.Corrupt() {
			t.Errorf("%T: size %d, want %d, corrupt: %t", tr, tr.Size(), size, tr.Corrupt())
		}
		for q := lo; q < hi; q++ {
			if tr.Has(q) != before[q-lo] {
				t.Errorf("%T: Has(%d) is %t after the round trip", tr, q, tr.Has(q))
			}
		}
	}
}

func TestRBTree_Descending(t *testing.T) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog")
	rb := BuildRBTree(words, Compare[string], Descending)
	want := slices.Compact(slices.Sorted(slices.Values(words)))
	slices.Reverse(want)
	if got := slices.Collect(rb.All(InOrder)); !slices.Equal(got, want) {
		t.Errorf("in-order is %v, want %v", got, want)
	}
	if rb.Min() != "the" || rb.Max() != "brown" {
		t.Errorf("min, max are %q, %q", rb.Min(), rb.Max())
	}
	if rb.Corrupt() {
		t.Error("tree corrupt")
	}
}

func TestRBTree_Corrupt(t *testing.T) {
	rb := BuildRBTree([]int{2, 1, 3}, Compare[int], Ascending)
	if rb.Corrupt() {
		t.Fatal("fresh tree corrupt")
	}
	rb.root.black = false
	if !rb.Corrupt() {
		t.Error("red root not detected")
	}
	rb.root.black = true
	rb.root.l.black = true
	if !rb.Corrupt() {
		t.Error("unequal black heights not detected")
	}
	if rb.BlackHeight() != 0 {
		t.Errorf("black height of a corrupt tree is %d", rb.BlackHeight())
	}
	rb.root.l.black = false
	rb.root.l.v = 5
	if !rb.Corrupt() {
		t.Error("misordered value not detected")
	}
	rb.root.l.v = 1
	rb.sz++
	if !rb.Corrupt() {
		t.Error("wrong size not detected")
	}
}

func TestRBTree_String(t *testing.T) {
	rb := BuildRBTree([]int{1, 2, 3, 4}, Compare[int], Ascending)
	s := rb.String()
	if !strings.HasPrefix(s, "RBTree[4]\n") {
		t.Errorf("header of %q", s)
	}
	if !strings.Contains(s, "4(R)") || strings.Contains(s, "2(R)") {
		t.Errorf("colours wrong in\n%s", s)
	}
}
