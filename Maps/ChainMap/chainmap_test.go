package ChainMap

import (
	"errors"
	"maps"
	"math/rand"
	"testing"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Maps"
)

var _ Maps.Map[int, int] = (*ChainMap[int, int])(nil)

var rg = rand.New(rand.NewSource(0))

const (
	times    = 200000
	keyRange = 4096
)

func TestChainMap_All(t *testing.T) {
	M := New[int, int](0, 0, Go_Collections.HashInteger[int])
	for i := 0; i < 1000; i++ {
		if _, replaced := M.Put(i, i); replaced {
			t.Errorf("%d replaced on first put", i)
		}
	}
	for i := 0; i < 1000; i++ {
		if v, ok := M.Get(i); !ok || v != i {
			t.Errorf("got %d, %t for %d", v, ok, i)
		}
	}
	for i := 0; i < 1000; i += 2 {
		if v, ok := M.Remove(i); !ok || v != i {
			t.Errorf("removed %d, %t for %d", v, ok, i)
		}
		if _, ok := M.Remove(i); ok {
			t.Errorf("removed %d twice", i)
		}
	}
	for i := 0; i < 1000; i++ {
		if M.HasKey(i) != (i%2 == 1) {
			t.Errorf("HasKey(%d) is %t", i, M.HasKey(i))
		}
	}
	if M.Size() != 500 || M.corrupt() {
		t.Errorf("size is %d, corrupt: %t", M.Size(), M.corrupt())
	}
}

func TestChainMap_Random(t *testing.T) {
	M := New[int, int](0, 0.5, Go_Collections.HashInteger[int])
	content := make(map[int]int)
	for i := range times {
		k, v := rg.Intn(keyRange), rg.Int()
		old, has := content[k]
		switch rg.Intn(4) {
		case 0:
			if got, ok := M.Remove(k); ok != has || got != old {
				t.Fatalf("Remove(%d) is %d, %t, want %d, %t", k, got, ok, old, has)
			}
			delete(content, k)
		case 1:
			if got, replaced := M.Put(k, v); replaced != has || got != old {
				t.Fatalf("Put(%d) replaced %d, %t, want %d, %t", k, got, replaced, old, has)
			}
			content[k] = v
		case 2:
			got, loaded := M.GetOrPut(k, v)
			if loaded != has || (has && got != old) || (!has && got != v) {
				t.Fatalf("GetOrPut(%d) is %d, %t", k, got, loaded)
			}
			if !has {
				content[k] = v
			}
		default:
			if got, ok := M.Get(k); ok != has || got != old {
				t.Fatalf("Get(%d) is %d, %t, want %d, %t", k, got, ok, old, has)
			}
		}
		if M.Size() != uint(len(content)) {
			t.Fatalf("size is %d, want %d", M.Size(), len(content))
		}
		if i%8192 == 0 && M.corrupt() {
			t.Fatalf("map corrupt after %d operations", i)
		}
	}
	if got := maps.Collect(M.All()); !maps.Equal(got, content) {
		t.Error("pairs differ from the content")
	}
}

func TestChainMap_Resize(t *testing.T) {
	M := New[int, struct{}](0, 0, Go_Collections.HashInteger[int])
	if M.Buckets() != DefaultCapacity {
		t.Fatalf("%d buckets", M.Buckets())
	}
	for i := range 23 {
		M.Put(i, struct{}{})
	}
	if M.Buckets() != 32 {
		t.Errorf("split early to %d", M.Buckets())
	}
	M.Put(23, struct{}{})
	if M.Buckets() != 64 || M.corrupt() {
		t.Errorf("%d buckets after reaching the load factor", M.Buckets())
	}
	for i := range 4 {
		M.Remove(i)
	}
	if M.Buckets() != 64 {
		t.Errorf("merged early to %d", M.Buckets())
	}
	M.Remove(4)
	if M.Buckets() != 32 || M.corrupt() {
		t.Errorf("%d buckets after falling under the load", M.Buckets())
	}
	for i := 5; i < 24; i++ {
		if _, ok := M.Remove(i); !ok {
			t.Fatalf("lost %d in resizing", i)
		}
	}
	if M.Buckets() != 32 || M.Size() != 0 || M.corrupt() {
		t.Errorf("%d buckets, size %d after removing all", M.Buckets(), M.Size())
	}
	if N := New[int, int](100, 1, Go_Collections.HashInteger[int]); N.Buckets() != 128 {
		t.Errorf("capacity 100 gave %d buckets", N.Buckets())
	}
}

func TestChainMap_Collisions(t *testing.T) {
	M := New[string, int](0, 0, func(string) uint64 { return 1 << 63 })
	words := []string{"a", "b", "c", "d", "e"}
	for i, w := range words {
		M.Put(w, i)
	}
	M.Remove("c")
	for i, w := range words {
		if v, ok := M.Get(w); ok != (w != "c") || (ok && v != i) {
			t.Errorf("Get(%q) is %d, %t", w, v, ok)
		}
	}
	if M.corrupt() {
		t.Error("map corrupt")
	}
}

func TestChainMap_PairsTake(t *testing.T) {
	M := New[string, int](0, 0, Go_Collections.HashString)
	if _, _, ok := M.Take(); ok {
		t.Error("took from an empty map")
	}
	f := M.Pairs()
	if _, _, ok := f(); ok {
		t.Error("pairs of an empty map")
	}
	want := map[string]int{"x": 1, "y": 2, "z": 3}
	for k, v := range want {
		M.Put(k, v)
	}
	if k, v, ok := M.Take(); !ok || want[k] != v || M.Size() != 3 {
		t.Errorf("took %q, %d, %t", k, v, ok)
	}
	got := make(map[string]int)
	f = M.Pairs()
	for k, v, ok := f(); ok; k, v, ok = f() {
		got[k] = v
	}
	if _, _, ok := f(); ok || !maps.Equal(got, want) {
		t.Errorf("pairs are %v", got)
	}
	for range M.All() {
		break
	}
	M.Clear()
	if M.Size() != 0 || M.HasKey("x") || M.Buckets() != DefaultCapacity || M.corrupt() {
		t.Error("map not cleared")
	}
}

func mustPanic[E error](t *testing.T, f func()) {
	t.Helper()
	defer func() {
		var target E
		r := recover()
		if err, ok := r.(error); !ok || !errors.As(err, &target) {
			t.Errorf("expected a panic with %T, got %v", target, r)
		}
	}()
	f()
}

func TestChainMap_Preconditions(t *testing.T) {
	mustPanic[Maps.NilHasherError](t, func() { New[int, int](0, 0, nil) })
	mustPanic[Maps.InvalidLoadFactorError](t, func() { New[int, int](0, 2, Go_Collections.HashInteger[int]) })
	mustPanic[Maps.InvalidLoadFactorError](t, func() { New[int, int](0, -1, Go_Collections.HashInteger[int]) })
}
