package Go_Collections

import "testing"

func TestCanBeNil(t *testing.T) {
	if CanBeNil[int]() || CanBeNil[string]() || CanBeNil[struct{}]() {
		t.Error("value kinds reported nilable")
	}
	if !CanBeNil[*int]() || !CanBeNil[any]() || !CanBeNil[[]int]() || !CanBeNil[map[int]int]() {
		t.Error("nilable kinds not reported")
	}
}

func TestIsNil(t *testing.T) {
	var p *int
	var s []int
	if !IsNil(p) || !IsNil(s) || !IsNil[any](nil) || IsNil(new(int)) || IsNil[any](0) {
		t.Error("IsNil misjudged")
	}
	//an interface holding a typed nil pointer is nil too.
	if !IsNil[any](p) {
		t.Error("typed nil in an interface not detected")
	}
}
